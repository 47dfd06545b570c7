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
	"github.com/optio/loyalty-rewards/pkg/storage"
)

// GetTierState retrieves a user's tier state from DynamoDB.
func (s *Store) GetTierState(ctx context.Context, userID string) (*models.TierState, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tier state user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.TierStates),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tier state from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTierStateNotFound
	}

	var state models.TierState
	if err := attributevalue.UnmarshalMap(result.Item, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tier state: %w", err)
	}

	return &state, nil
}

// CreateTierState creates the initial tier state record for a user.
func (s *Store) CreateTierState(ctx context.Context, state *models.TierState) (*models.TierState, error) {
	state.Version = 1
	state.TierStartDate = time.Now().UTC()

	stateAV, err := attributevalue.MarshalMap(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tier state: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.TierStates),
		Item:                stateAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return nil, storage.ErrTierStateExists
		}
		return nil, fmt.Errorf("failed to create tier state in DynamoDB: %w", err)
	}

	return state, nil
}

// PromoteTierState moves a user onto a new tier. The update is conditional on
// the row still carrying the level and version the caller observed, so two
// concurrent evaluations cannot both apply and re-running an evaluation that
// already applied is a clean conflict, not a double promotion.
func (s *Store) PromoteTierState(ctx context.Context, state *models.TierState, toTier models.RewardTier) (*models.TierState, error) {
	now := time.Now().UTC()
	newTierPoints := state.TotalPointsEarned - toTier.MinPoints

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.TierStates),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: state.UserID},
		},
		UpdateExpression:    aws.String("SET current_tier_level = :to_level, tier_points = :tier_points, last_tier_upgrade = :now, version = version + :inc"),
		ConditionExpression: aws.String("current_tier_level = :from_level AND version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to_level":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", toTier.TierLevel)},
			":tier_points": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newTierPoints)},
			":now":         &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
			":from_level":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", state.CurrentTierLevel)},
			":version":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", state.Version)},
			":inc":         &types.AttributeValueMemberN{Value: "1"},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return nil, storage.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to promote tier state: %w", err)
	}

	promoted := *state
	promoted.CurrentTierLevel = toTier.TierLevel
	promoted.TierPoints = newTierPoints
	promoted.LastTierUpgrade = &now
	promoted.Version = state.Version + 1
	return &promoted, nil
}
