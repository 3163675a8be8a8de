package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type EmotionSecretData struct {
	ApiKey string `json:"apiKey"`
}

// SecretValueGetter is the slice of the Secrets Manager client this package needs.
type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ReadSecret fetches the secret at path and decodes its JSON string into v.
func ReadSecret(ctx context.Context, client SecretValueGetter, path string, v any) error {
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(path)})
	if err != nil {
		return err
	}
	if result.SecretString == nil {
		return fmt.Errorf("secret %s has no string value", path)
	}
	if err := json.Unmarshal([]byte(*result.SecretString), v); err != nil {
		return fmt.Errorf("secret %s read error: %w", path, err)
	}
	return nil
}
