package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/optio/loyalty-rewards/pkg/api"
	"github.com/optio/loyalty-rewards/pkg/coupon"
	"github.com/optio/loyalty-rewards/pkg/documents"
	"github.com/optio/loyalty-rewards/pkg/handlers"
	"github.com/optio/loyalty-rewards/pkg/loyalty"
	"github.com/optio/loyalty-rewards/pkg/middleware"
	"github.com/optio/loyalty-rewards/pkg/notifications"
	dydbstore "github.com/optio/loyalty-rewards/pkg/storage/dynamodb"
)

// tablesFromEnv resolves the DynamoDB table names, failing fast on any gap.
func tablesFromEnv() dydbstore.Tables {
	tables := dydbstore.Tables{
		Ledgers:     os.Getenv("DYNAMODB_LEDGERS_TABLE_NAME"),
		TierStates:  os.Getenv("DYNAMODB_TIER_STATES_TABLE_NAME"),
		Tiers:       os.Getenv("DYNAMODB_TIERS_TABLE_NAME"),
		Vouchers:    os.Getenv("DYNAMODB_VOUCHERS_TABLE_NAME"),
		Redemptions: os.Getenv("DYNAMODB_REDEMPTIONS_TABLE_NAME"),
		Activities:  os.Getenv("DYNAMODB_ACTIVITIES_TABLE_NAME"),
		CouponCodes: os.Getenv("DYNAMODB_COUPON_CODES_TABLE_NAME"),
	}
	if tables.Ledgers == "" || tables.TierStates == "" || tables.Tiers == "" ||
		tables.Vouchers == "" || tables.Redemptions == "" || tables.Activities == "" ||
		tables.CouponCodes == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	return tables
}

// envInt64 reads an integer environment variable with a default.
func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid value for %s: %v", key, err)
	}
	return v
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	store := dydbstore.New(dbClient, tablesFromEnv())

	// SQS client and document render scheduler
	sqsQueueURL := os.Getenv("SQS_DOCUMENTS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_DOCUMENTS_QUEUE_URL environment variable not set")
	}
	docScheduler := documents.NewSQSScheduler(sqs.NewFromConfig(cfg), sqsQueueURL)

	// SNS publisher; notifications are optional in local setups.
	var publisher notifications.Publisher
	if topicARN := os.Getenv("SNS_NOTIFICATIONS_TOPIC_ARN"); topicARN != "" {
		publisher = notifications.NewSNSPublisher(sns.NewFromConfig(cfg), topicARN)
	} else {
		log.Println("SNS_NOTIFICATIONS_TOPIC_ARN not set, notifications disabled")
		publisher = &notifications.NoOpPublisher{}
	}

	// The tier table is static reference data; a misconfigured table means
	// the service refuses to start rather than mis-tiering users.
	table, err := loyalty.LoadTable(context.TODO(), store)
	if err != nil {
		log.Fatalf("failed to load tier table: %v", err)
	}

	service := loyalty.NewService(store, table, coupon.NewRandomGenerator(), publisher, docScheduler, loyalty.Config{
		SignupPoints:    envInt64("DEFAULT_SIGNUP_POINTS", 10000),
		DailyLoginBonus: envInt64("DAILY_LOGIN_BONUS", 10),
	})

	// Create our handler
	handler := handlers.NewApiHandler(service)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(slog.Default()))

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
