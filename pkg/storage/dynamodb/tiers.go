package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/optio/loyalty-rewards/pkg/models"
)

// ListTiers retrieves all tier definitions in ascending level order.
// The tier table is small, static reference data, so a Scan is fine here.
func (s *Store) ListTiers(ctx context.Context) ([]models.RewardTier, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Tiers),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tiers table: %w", err)
	}

	var tiers []models.RewardTier
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tiers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tiers: %w", err)
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].TierLevel < tiers[j].TierLevel })

	return tiers, nil
}

// PutTier creates or replaces a tier definition. Privileged seed-tooling path.
func (s *Store) PutTier(ctx context.Context, tier *models.RewardTier) error {
	tierAV, err := attributevalue.MarshalMap(tier)
	if err != nil {
		return fmt.Errorf("failed to marshal tier: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Tiers),
		Item:      tierAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put tier in DynamoDB: %w", err)
	}

	return nil
}
