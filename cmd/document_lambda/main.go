package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/optio/loyalty-rewards/pkg/documents"
	"github.com/optio/loyalty-rewards/pkg/storage"
	dydbstore "github.com/optio/loyalty-rewards/pkg/storage/dynamodb"
)

var store storage.RedemptionStore
var renderer documents.Renderer

// setup wires the store and renderer. Called from main rather than init so
// the handler can be exercised with fakes.
func setup() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Ledgers:     os.Getenv("DYNAMODB_LEDGERS_TABLE_NAME"),
		TierStates:  os.Getenv("DYNAMODB_TIER_STATES_TABLE_NAME"),
		Tiers:       os.Getenv("DYNAMODB_TIERS_TABLE_NAME"),
		Vouchers:    os.Getenv("DYNAMODB_VOUCHERS_TABLE_NAME"),
		Redemptions: os.Getenv("DYNAMODB_REDEMPTIONS_TABLE_NAME"),
		Activities:  os.Getenv("DYNAMODB_ACTIVITIES_TABLE_NAME"),
		CouponCodes: os.Getenv("DYNAMODB_COUPON_CODES_TABLE_NAME"),
	}
	if tables.Redemptions == "" {
		log.Fatal("DYNAMODB_REDEMPTIONS_TABLE_NAME environment variable not set")
	}
	store = dydbstore.New(dbClient, tables)

	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		log.Fatal("DOCUMENTS_BUCKET environment variable not set")
	}
	renderer = documents.NewS3Renderer(s3.NewFromConfig(cfg), bucket)
}

// HandleRequest processes SQS messages and renders voucher documents.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var req documents.RenderRequest
		if err := json.Unmarshal([]byte(message.Body), &req); err != nil {
			// A body that never parsed will never parse; retrying it would just
			// poison the queue. Skip it and let the rest of the batch proceed.
			log.Printf("ERROR: skipping SQS message %s with malformed render request: %v", message.MessageId, err)
			continue
		}

		log.Printf("Rendering document for redemption %s", req.RedemptionID)

		documentRef, err := renderer.Render(ctx, &req)
		if err != nil {
			log.Printf("ERROR: failed to render document for redemption %s: %v", req.RedemptionID, err)
			return err
		}

		// The redemption is already committed; attaching the reference is the
		// only write this worker performs against the store.
		if err := store.AttachDocument(ctx, req.RedemptionID, documentRef); err != nil {
			log.Printf("ERROR: failed to attach document to redemption %s: %v", req.RedemptionID, err)
			return err
		}

		log.Printf("Successfully rendered document for redemption %s", req.RedemptionID)
	}

	return nil
}

func main() {
	setup()
	lambda.Start(HandleRequest)
}
