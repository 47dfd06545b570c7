package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/optio/loyalty-rewards/pkg/documents"
	"github.com/optio/loyalty-rewards/pkg/storage"
	dydbstore "github.com/optio/loyalty-rewards/pkg/storage/dynamodb"
)

var store storage.Storage
var docScheduler documents.Scheduler

const reconciliationBatchSize = 25

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	// Initialize dependencies.
	sqsQueueURL := os.Getenv("SQS_DOCUMENTS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_DOCUMENTS_QUEUE_URL environment variable not set")
	}
	docScheduler = documents.NewSQSScheduler(sqsClient, sqsQueueURL)

	tables := dydbstore.Tables{
		Ledgers:     os.Getenv("DYNAMODB_LEDGERS_TABLE_NAME"),
		TierStates:  os.Getenv("DYNAMODB_TIER_STATES_TABLE_NAME"),
		Tiers:       os.Getenv("DYNAMODB_TIERS_TABLE_NAME"),
		Vouchers:    os.Getenv("DYNAMODB_VOUCHERS_TABLE_NAME"),
		Redemptions: os.Getenv("DYNAMODB_REDEMPTIONS_TABLE_NAME"),
		Activities:  os.Getenv("DYNAMODB_ACTIVITIES_TABLE_NAME"),
		CouponCodes: os.Getenv("DYNAMODB_COUPON_CODES_TABLE_NAME"),
	}
	store = dydbstore.New(dbClient, tables)
}

// HandleRequest is triggered by an EventBridge Schedule. It finds completed
// redemptions whose proof document never got attached and re-enqueues their
// render requests. A document render failure never rolls a redemption back;
// this pass is how those redemptions eventually get their document.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for redemptions missing documents...")

	missing, err := store.ListRedemptionsMissingDocument(ctx, reconciliationBatchSize)
	if err != nil {
		log.Printf("ERROR: failed to list redemptions missing documents: %v", err)
		return err
	}

	if len(missing) == 0 {
		log.Println("No redemptions missing documents found.")
		return nil
	}

	log.Printf("Found %d redemptions missing documents. Re-enqueuing them...", len(missing))

	for _, redemption := range missing {
		completedAt := ""
		if redemption.CompletedAt != nil {
			completedAt = redemption.CompletedAt.Format(time.RFC3339)
		}
		req := &documents.RenderRequest{
			RedemptionID: redemption.ID,
			UserID:       redemption.UserID,
			VoucherTitle: redemption.VoucherTitle,
			CouponCode:   redemption.CouponCode,
			PointsUsed:   redemption.PointsUsed,
			Quantity:     redemption.Quantity,
			CompletedAt:  completedAt,
		}
		if err := docScheduler.ScheduleRender(ctx, req); err != nil {
			log.Printf("ERROR: failed to re-enqueue render for redemption %s: %v", redemption.ID, err)
			// Continue to the next redemption, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully re-enqueued render for redemption %s", redemption.ID)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
