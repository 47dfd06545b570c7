package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/storage"
)

const activityUserIndex = "user_id-created_at-index"

// RecordActivity appends an activity entry and propagates its points in a
// single atomic transaction: the entry is written, the ledger balance is
// credited and the tier state's lifetime counters are incremented. The
// ledger and tier-state rows must already exist; callers materialize them
// first via the get-or-create path.
func (s *Store) RecordActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	// Stored in UTC so the per-day duplicate check can match on a date prefix.
	now := time.Now().UTC()
	activity.ID = uuid.New().String()
	activity.CreatedAt = now

	activityAV, err := attributevalue.MarshalMap(activity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal activity: %w", err)
	}

	pointsAV := &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", activity.PointsEarned)}
	nowAV := &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Append the activity entry.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Activities),
					Item:                activityAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Credit the user's ledger.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Ledgers),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: activity.UserID},
					},
					UpdateExpression:    aws.String("SET balance = balance + :points, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":points": pointsAV,
						":inc":    &types.AttributeValueMemberN{Value: "1"},
						":now":    nowAV,
					},
				},
			},
			{
				// Operation 3: Advance the lifetime counters on the tier state.
				Update: &types.Update{
					TableName: aws.String(s.Tables.TierStates),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: activity.UserID},
					},
					UpdateExpression:    aws.String("SET total_points_earned = total_points_earned + :points, tier_points = tier_points + :points, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":points": pointsAV,
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		switch {
		case cancelledAt(err, 1):
			return nil, storage.ErrLedgerNotFound
		case cancelledAt(err, 2):
			return nil, storage.ErrTierStateNotFound
		}
		return nil, fmt.Errorf("failed to execute activity transaction: %w", err)
	}

	return activity, nil
}

// ListActivitiesByUserID retrieves all activity entries for a user, newest first.
func (s *Store) ListActivitiesByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Activities),
		IndexName:              aws.String(activityUserIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}

	var activities []models.Activity
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &activities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
	}

	return activities, nil
}

// HasActivityOnDay reports whether the user already has an entry of the given
// type on the given calendar day (UTC). Timestamps are stored as RFC 3339
// strings, so a begins_with on the date prefix selects the whole day.
func (s *Store) HasActivityOnDay(ctx context.Context, userID string, activityType models.ActivityType, day time.Time) (bool, error) {
	dayPrefix := day.UTC().Format("2006-01-02")

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Activities),
		IndexName:              aws.String(activityUserIndex),
		KeyConditionExpression: aws.String("user_id = :user_id AND begins_with(created_at, :day)"),
		FilterExpression:       aws.String("activity_type = :activity_type"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id":       &types.AttributeValueMemberS{Value: userID},
			":day":           &types.AttributeValueMemberS{Value: dayPrefix},
			":activity_type": &types.AttributeValueMemberS{Value: string(activityType)},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return false, fmt.Errorf("failed to query activities for day %s: %w", dayPrefix, err)
	}

	return len(result.Items) > 0, nil
}
