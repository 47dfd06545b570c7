package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/storage"
	"github.com/optio/loyalty-rewards/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordActivity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, testTables())
		activity, err := store.RecordActivity(context.Background(), &models.Activity{
			UserID:       "user1",
			ActivityType: models.ActivityLogin,
			PointsEarned: 10,
			Description:  "Daily login bonus",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, activity.ID)
		assert.False(t, activity.CreatedAt.IsZero())

		// Entry append, ledger credit and tier counters move as one unit.
		assert.Len(t, captured.TransactItems, 3)
		assert.Equal(t, "activities", *captured.TransactItems[0].Put.TableName)
		assert.Equal(t, "ledgers", *captured.TransactItems[1].Update.TableName)
		assert.Contains(t, *captured.TransactItems[1].Update.UpdateExpression, "balance = balance + :points")
		assert.Equal(t, "tier-states", *captured.TransactItems[2].Update.TableName)
		assert.Contains(t, *captured.TransactItems[2].Update.UpdateExpression, "total_points_earned = total_points_earned + :points")

		mockClient.AssertExpectations(t)
	})

	t.Run("Ledger Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("None")},
					{Code: aws.String("ConditionalCheckFailed")},
					{Code: aws.String("None")},
				},
			})

		store := New(mockClient, testTables())
		_, err := store.RecordActivity(context.Background(), &models.Activity{
			UserID:       "ghost",
			ActivityType: models.ActivityTransaction,
			PointsEarned: 50,
		})

		assert.ErrorIs(t, err, storage.ErrLedgerNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Tier State Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("None")},
					{Code: aws.String("None")},
					{Code: aws.String("ConditionalCheckFailed")},
				},
			})

		store := New(mockClient, testTables())
		_, err := store.RecordActivity(context.Background(), &models.Activity{
			UserID:       "user1",
			ActivityType: models.ActivityReferral,
			PointsEarned: 200,
		})

		assert.ErrorIs(t, err, storage.ErrTierStateNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		store := New(mockClient, testTables())
		_, err := store.RecordActivity(context.Background(), &models.Activity{
			UserID:       "user1",
			ActivityType: models.ActivityReview,
			PointsEarned: 25,
		})

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestListActivitiesByUserID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		first, _ := attributevalue.MarshalMap(&models.Activity{ID: "a2", UserID: "user1", ActivityType: models.ActivityLogin, PointsEarned: 10})
		second, _ := attributevalue.MarshalMap(&models.Activity{ID: "a1", UserID: "user1", ActivityType: models.ActivityWelcomeBonus, PointsEarned: 10000})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == activityUserIndex && !*input.ScanIndexForward
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{first, second}}, nil)

		store := New(mockClient, testTables())
		activities, err := store.ListActivitiesByUserID(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Len(t, activities, 2)
		assert.Equal(t, "a2", activities[0].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: nil}, nil)

		store := New(mockClient, testTables())
		activities, err := store.ListActivitiesByUserID(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Empty(t, activities)
		mockClient.AssertExpectations(t)
	})
}

func TestHasActivityOnDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		item, _ := attributevalue.MarshalMap(&models.Activity{ID: "a1", UserID: "user1", ActivityType: models.ActivityLogin})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			dayAV, ok := input.ExpressionAttributeValues[":day"].(*types.AttributeValueMemberS)
			return ok && dayAV.Value == "2024-03-15" && *input.Limit == 1
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil)

		store := New(mockClient, testTables())
		found, err := store.HasActivityOnDay(context.Background(), "user1", models.ActivityLogin, day)

		assert.NoError(t, err)
		assert.True(t, found)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: nil}, nil)

		store := New(mockClient, testTables())
		found, err := store.HasActivityOnDay(context.Background(), "user1", models.ActivityLogin, day)

		assert.NoError(t, err)
		assert.False(t, found)
		mockClient.AssertExpectations(t)
	})
}
