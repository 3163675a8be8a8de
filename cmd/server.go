package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/truemediaorg/emotiondetector/config"
	"github.com/truemediaorg/emotiondetector/server"
	"github.com/truemediaorg/emotiondetector/service"
	"github.com/truemediaorg/emotiondetector/watson"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serverCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Runs the emotion detector HTTP server",
	Long:  `Runs the emotion detector HTTP server`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg := config.FromEnvfile()
		cfg.ConfigureLogging()

		if cfg.Server.Debug {
			log.Info("DEBUG MODE ENABLED")
		}

		/*
			Graceful shutdown is possible with errgroup + signal.NotifyContext
			NotifyContext returns a context that will close on OS signals to terminate the process
			errgroup uses that context, and also closes it in case a goroutine errors out
		*/
		ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer done()
		g, gCtx := errgroup.WithContext(ctx)

		apiKey := loadEmotionAPIKey(gCtx, cfg.Emotion)
		client := watson.NewClient(apiKey, cfg.Emotion.ApiURL, cfg.Emotion.ModelID, cfg.Emotion.Timeout)
		log.WithField("endpoint", cfg.Emotion.ApiURL.String()).WithField("timeout", cfg.Emotion.Timeout).Info("emotion client initialized")

		emotionService := service.NewEmotionService(client)
		srv := server.NewServer(cfg.Server, emotionService)

		g.Go(func() error {
			return srv.Start()
		})
		// ...and shut down the server once the process needs to terminate
		g.Go(func() error {
			<-gCtx.Done()
			defer log.Info("exiting server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			log.Errorf("caught error: %v", err)
		}
	},
}

// The emotion API key is optional. AWS is only contacted when a secrets path is configured.
func loadEmotionAPIKey(ctx context.Context, cfg config.EmotionConfig) string {
	if cfg.SecretPath == "" {
		return ""
	}
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}
	secretsManagerClient := secretsmanager.NewFromConfig(awsConfig)

	var secrets config.EmotionSecretData
	if err := config.ReadSecret(ctx, secretsManagerClient, cfg.SecretPath, &secrets); err != nil {
		log.Fatalf("emotion secrets read error: %v", err)
	}
	return secrets.ApiKey
}
