package database

import (
	"context"

	appconfig "orcafacil/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates a DynamoDB client from the application
// configuration. An explicit endpoint (e.g. http://dynamodb:8000) switches
// the client to a local instance; local DynamoDB does not validate
// credentials, but the AWS SDK requires them.
func NewDynamoDBClient(ctx context.Context, cfg appconfig.AWS) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewAWSConfig loads the shared AWS SDK configuration with static
// credentials from the application configuration.
func NewAWSConfig(ctx context.Context, cfg appconfig.AWS) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}
