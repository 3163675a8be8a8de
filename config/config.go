package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/truemediaorg/emotiondetector/watson"
)

type Config struct {
	Server  ServerConfig
	Emotion EmotionConfig

	LogLevel  log.Level
	LogFormat LogFormat
}

type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type EmotionConfig struct {
	ApiURL     url.URL
	ModelID    string
	Timeout    time.Duration
	SecretPath string
}

type LogFormat string

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type EnvfileKey string

const (
	// Interface the HTTP server listens on
	EnvfileKeyHost = "HOST"
	// Port the HTTP server listens on
	EnvfileKeyPort = "PORT"
	// Enables echo debug mode and forces debug logging
	EnvfileKeyDebug = "DEBUG"

	// Full URL of the EmotionPredict endpoint
	EnvfileKeyEmotionAPI = "EMOTION_API"
	// Model ID sent with each prediction request
	EnvfileKeyEmotionModelID = "EMOTION_MODEL_ID"
	// Timeout for a single prediction request, in seconds
	EnvfileKeyEmotionTimeout = "EMOTION_TIMEOUT"
	// AWS Secrets Manager path where the emotion API key can be found (optional)
	EnvfileKeyEmotionSecretPath = "EMOTION_SECRETS_PATH"

	// Log level (e.g. "debug", "info", "warn", "error")
	EnvfileKeyLogLevel = "LOG_LEVEL"
	// Log output format (e.g. "text", "json")
	EnvfileKeyLogFormat = "LOG_FORMAT"
)

const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 5000
	defaultEmotionTimeout = 10 * time.Second
)

// FromEnvfile loads the config and exits the process if it can't.
func FromEnvfile() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	return cfg
}

// Load reads config from env vars and an optional .env file in the working
// directory. Env vars win over the file. Unset values fall back to defaults.
func Load() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("dotenv")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Debug("no .env file found, using environment only")
	}

	rawEmotionURL := getConfigString(EnvfileKeyEmotionAPI)
	if rawEmotionURL == "" {
		rawEmotionURL = watson.DefaultEmotionPredictURL
	}
	emotionURL, err := url.Parse(rawEmotionURL)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing emotion API URL: %w", err)
	}
	if emotionURL.Scheme == "" || emotionURL.Host == "" {
		return Config{}, fmt.Errorf("emotion API URL must be absolute: %s", rawEmotionURL)
	}

	modelID := getConfigString(EnvfileKeyEmotionModelID)
	if modelID == "" {
		modelID = watson.DefaultModelID
	}

	timeout := defaultEmotionTimeout
	if seconds := getConfigInt(EnvfileKeyEmotionTimeout); seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	host := getConfigString(EnvfileKeyHost)
	if host == "" {
		host = defaultHost
	}

	port := getConfigInt(EnvfileKeyPort)
	if port <= 0 || port > 65535 {
		if port != 0 {
			log.Warnf("invalid port %d, using %d", port, defaultPort)
		}
		port = defaultPort
	}

	debug := getConfigBool(EnvfileKeyDebug)

	logLevel, err := parseLogLevel(getConfigString(EnvfileKeyLogLevel))
	if err != nil {
		// Default to info level but log a warning
		log.Warnf("unable to parse log level: %v", err)
		logLevel = log.InfoLevel
	}
	if debug && logLevel < log.DebugLevel {
		logLevel = log.DebugLevel
	}

	logFormat, err := parseLogFormat(getConfigString(EnvfileKeyLogFormat))
	if err != nil {
		// Default to text formatter but log a warning
		log.Warnf("unable to parse log format: %v", err)
		logFormat = LogFormatText
	}

	return Config{
		Server: ServerConfig{
			Host:  host,
			Port:  port,
			Debug: debug,
		},
		Emotion: EmotionConfig{
			ApiURL:     *emotionURL,
			ModelID:    modelID,
			Timeout:    timeout,
			SecretPath: getConfigString(EnvfileKeyEmotionSecretPath),
		},
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, nil
}

// ConfigureLogging applies the configured level and formatter to the standard logger.
func (c Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	switch c.LogFormat {
	case LogFormatJSON:
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}
}

func parseLogLevel(raw string) (log.Level, error) {
	if raw == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(raw)
}

func parseLogFormat(raw string) (LogFormat, error) {
	switch strings.ToLower(raw) {
	case "":
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	case LogFormatText:
		return LogFormatText, nil
	default:
		return "", fmt.Errorf("unidentified log format: %s", raw)
	}
}

// Gets a config value as a string from env vars or a .env file
func getConfigString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		value = viper.GetString(key)
	}
	return value
}

// Gets a config value as an int from env vars or a .env file
func getConfigInt(key string) int {
	envVarValue := os.Getenv(key)
	if envVarValue == "" {
		return viper.GetInt(key)
	}
	value, err := strconv.Atoi(envVarValue)
	if err != nil {
		log.Warnf("ignoring non-integer %s: %q", key, envVarValue)
		return 0
	}
	return value
}

// Gets a config value as a bool from env vars or a .env file
func getConfigBool(key string) bool {
	envVarValue := os.Getenv(key)
	if envVarValue == "" {
		return viper.GetBool(key)
	}
	value, err := strconv.ParseBool(envVarValue)
	if err != nil {
		log.Warnf("ignoring non-boolean %s: %q", key, envVarValue)
		return false
	}
	return value
}
