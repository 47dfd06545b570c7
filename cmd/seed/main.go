package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/optio/loyalty-rewards/pkg/models"
	dydbstore "github.com/optio/loyalty-rewards/pkg/storage/dynamodb"
)

// defaultTiers is the canonical four-level tier ladder.
var defaultTiers = []models.RewardTier{
	{
		TierLevel: 1,
		TierName:  "Bronze",
		MinPoints: 0,
		Color:     "#CD7F32",
		Icon:      "medal",
		Benefits:  []string{"Earn points on every activity", "Access to voucher catalog"},
	},
	{
		TierLevel: 2,
		TierName:  "Silver",
		MinPoints: 1000,
		Color:     "#C0C0C0",
		Icon:      "star",
		Benefits:  []string{"All Bronze benefits", "Early access to new vouchers"},
	},
	{
		TierLevel:       3,
		TierName:        "Gold",
		MinPoints:       5000,
		Color:           "#FFD700",
		Icon:            "crown",
		Benefits:        []string{"All Silver benefits", "Exclusive seasonal offers"},
		ExclusiveOffers: true,
	},
	{
		TierLevel:       4,
		TierName:        "Platinum",
		MinPoints:       15000,
		Color:           "#E5E4E2",
		Icon:            "diamond",
		Benefits:        []string{"All Gold benefits", "Priority support", "Invitation-only events"},
		ExclusiveOffers: true,
		PremiumSupport:  true,
	},
}

// defaultVouchers is a small starter catalog for fresh environments.
var defaultVouchers = []models.Voucher{
	{
		Title:              "Coffee Voucher",
		Category:           "food",
		PointsCost:         2500,
		OriginalPointsCost: 3000,
		DiscountPercentage: 17,
		Description:        "One free specialty coffee at participating cafes.",
		Terms:              "Valid for 90 days from redemption. One per visit.",
		QuantityAvailable:  100,
		IsActive:           true,
	},
	{
		Title:             "Movie Ticket",
		Category:          "entertainment",
		PointsCost:        5000,
		Description:       "One standard movie ticket, any showing.",
		Terms:             "Valid for 60 days from redemption. Excludes premium screens.",
		QuantityAvailable: 50,
		IsActive:          true,
	},
	{
		Title:             "Ride Discount",
		Category:          "transport",
		PointsCost:        1000,
		Description:       "20% off your next ride.",
		Terms:             "Valid for 30 days from redemption. Maximum discount applies.",
		QuantityAvailable: 200,
		IsActive:          true,
	},
}

func main() {
	resetUser := flag.String("reset-user", "", "reset the given user's ledger, tier state and activity log")
	resetBalance := flag.Int64("reset-balance", 10000, "starting balance to apply with -reset-user")
	skipVouchers := flag.Bool("skip-vouchers", false, "seed tiers only, leave the voucher catalog untouched")
	flag.Parse()

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

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
	store := dydbstore.New(dbClient, tables)

	ctx := context.Background()

	if *resetUser != "" {
		log.Printf("Resetting user %s to balance %d...", *resetUser, *resetBalance)
		if err := store.ResetUser(ctx, *resetUser, *resetBalance); err != nil {
			log.Fatalf("failed to reset user %s: %v", *resetUser, err)
		}
		log.Printf("Successfully reset user %s", *resetUser)
		return
	}

	log.Println("Seeding tier table...")
	for _, tier := range defaultTiers {
		tier := tier
		if err := store.PutTier(ctx, &tier); err != nil {
			log.Fatalf("failed to seed tier %s: %v", tier.TierName, err)
		}
		log.Printf("Seeded tier %d: %s (min %d points)", tier.TierLevel, tier.TierName, tier.MinPoints)
	}

	if !*skipVouchers {
		log.Println("Seeding voucher catalog...")
		for _, voucher := range defaultVouchers {
			voucher := voucher
			voucher.ID = uuid.New().String()
			if err := store.PutVoucher(ctx, &voucher); err != nil {
				log.Fatalf("failed to seed voucher %s: %v", voucher.Title, err)
			}
			log.Printf("Seeded voucher %s (%d points, %d available)", voucher.Title, voucher.PointsCost, voucher.QuantityAvailable)
		}
	}

	log.Println("Seeding finished.")
}
