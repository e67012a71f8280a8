package objectstore

import (
	"context"

	appconfig "orcafacil/internal/infrastructure/config"
	"orcafacil/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client creates an S3 client from the application configuration. An
// explicit endpoint (e.g. http://minio:9000) switches the client to an
// S3-compatible local store; path-style addressing is required there because
// bucket subdomains do not resolve.
func NewS3Client(ctx context.Context, cfg appconfig.AWS) (*s3.Client, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
