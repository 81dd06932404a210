package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DynamoDBSettings are read from the environment without a prefix.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
type DynamoDBSettings struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
}

func LoadDynamoDBSettings() (DynamoDBSettings, error) {
	var s DynamoDBSettings
	if err := envconfig.Process("", &s); err != nil {
		return DynamoDBSettings{}, errors.Wrap(err, "load dynamodb settings")
	}
	return s, nil
}

// ConnectDynamoDB creates a DynamoDB client from the environment and exits
// the process when that is impossible.
func ConnectDynamoDB() *dynamodb.Client {
	settings, err := LoadDynamoDBSettings()
	if err != nil {
		log.WithError(err).Fatal("[scheduling][database] invalid dynamodb settings")
	}
	cfg, err := NewDynamoDBConfig(context.Background(), settings)
	if err != nil {
		log.WithError(err).Fatal("[scheduling][database] failed to create dynamodb config")
	}
	log.WithFields(log.Fields{"region": settings.Region, "endpoint": settings.Endpoint}).Info("[scheduling][database] dynamodb client ready")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
	})
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(creds),
	)
}
