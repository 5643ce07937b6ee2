package database

import (
	"context"
	"log"

	appconfig "assignment_ledger/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// When DynamoDBEndpoint is set (e.g. http://dynamodb:8000) the client talks
// to that endpoint instead of AWS.
func ConnectDynamoDB(c appconfig.Config) *dynamodb.Client {
	cfg, err := NewAWSConfig(context.Background(), c)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg, clientOptions(c)...)
}

func NewAWSConfig(ctx context.Context, c appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(c.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

func clientOptions(c appconfig.Config) []func(*dynamodb.Options) {
	if c.DynamoDBEndpoint == "" {
		return nil
	}
	log.Printf("[dynamodb][client] using endpoint=%s region=%s", c.DynamoDBEndpoint, c.AWSRegion)
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(c.DynamoDBEndpoint)
		},
	}
}
