package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/optio/loyalty-rewards/pkg/models"
)

// ResetUser force-resets a user's ledger, tier state and activity log to a
// clean baseline. This is the administrative override path: it overwrites
// rows unconditionally and bypasses the invariant-checked mutation paths.
func (s *Store) ResetUser(ctx context.Context, userID string, startingBalance int64) error {
	now := time.Now().UTC()

	ledgerAV, err := attributevalue.MarshalMap(&models.Ledger{
		UserID:    userID,
		Balance:   startingBalance,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reset ledger: %w", err)
	}

	stateAV, err := attributevalue.MarshalMap(&models.TierState{
		UserID:           userID,
		CurrentTierLevel: 1,
		TierStartDate:    now,
		Version:          1,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reset tier state: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(s.Tables.Ledgers),
					Item:      ledgerAV,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(s.Tables.TierStates),
					Item:      stateAV,
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return fmt.Errorf("failed to reset user state: %w", err)
	}

	// Clear the activity history. Individual deletes are fine here: the reset
	// path is ops tooling, not a hot path.
	activities, err := s.ListActivitiesByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list activities for reset: %w", err)
	}
	for _, activity := range activities {
		_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.Tables.Activities),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: activity.ID},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete activity %s during reset: %w", activity.ID, err)
		}
	}

	return nil
}
