package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
)

// AWSConfig selects the region and, for LocalStack, the endpoint of the
// messaging clients. An empty Endpoint uses the SDK resolution (including
// AWS_ENDPOINT_URL).
type AWSConfig struct {
	Region   string
	Endpoint string
}

// LoadAWSConfig loads the default AWS configuration chain
func LoadAWSConfig(ctx context.Context, cfg AWSConfig) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS config")
	}

	return awsCfg, nil
}

// NewSNSClient creates an SNS client honoring the configured endpoint
func NewSNSClient(awsCfg aws.Config, cfg AWSConfig) *sns.Client {
	return sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}

// NewSQSClient creates an SQS client honoring the configured endpoint
func NewSQSClient(awsCfg aws.Config, cfg AWSConfig) *sqs.Client {
	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}
