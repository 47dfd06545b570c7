package dynamodb

import (
	"context"
	"errors"
	"testing"

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

func testTables() Tables {
	return Tables{
		Ledgers:     "ledgers",
		TierStates:  "tier-states",
		Tiers:       "tiers",
		Vouchers:    "vouchers",
		Redemptions: "redemptions",
		Activities:  "activities",
		CouponCodes: "coupon-codes",
	}
}

func TestGetLedger(t *testing.T) {
	userID := "test-user"

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		ledger := &models.Ledger{UserID: userID, Balance: 10000, Version: 1}
		ledgerAV, _ := attributevalue.MarshalMap(ledger)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: ledgerAV}, nil)

		store := New(mockClient, testTables())
		retrieved, err := store.GetLedger(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, int64(10000), retrieved.Balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, testTables())
		_, err := store.GetLedger(context.Background(), userID)

		assert.ErrorIs(t, err, storage.ErrLedgerNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, testTables())
		_, err := store.GetLedger(context.Background(), userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get ledger from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestCreateProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, testTables())
		ledger, state, err := store.CreateProfile(context.Background(),
			&models.Ledger{UserID: "test-user"},
			&models.TierState{UserID: "test-user", CurrentTierLevel: 1},
		)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), ledger.Version)
		assert.False(t, ledger.CreatedAt.IsZero())
		assert.Equal(t, int64(1), state.Version)
		assert.False(t, state.TierStartDate.IsZero())

		// Both rows land in one transaction, each guarded against overwrite.
		assert.Len(t, captured.TransactItems, 2)
		assert.Equal(t, "ledgers", *captured.TransactItems[0].Put.TableName)
		assert.Equal(t, "tier-states", *captured.TransactItems[1].Put.TableName)
		for _, item := range captured.TransactItems {
			assert.Equal(t, "attribute_not_exists(user_id)", *item.Put.ConditionExpression)
		}
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent First Contact Loses Cleanly", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		})

		store := New(mockClient, testTables())
		_, _, err := store.CreateProfile(context.Background(),
			&models.Ledger{UserID: "test-user"},
			&models.TierState{UserID: "test-user", CurrentTierLevel: 1},
		)

		assert.ErrorIs(t, err, storage.ErrProfileExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throughput exceeded"))

		store := New(mockClient, testTables())
		_, _, err := store.CreateProfile(context.Background(),
			&models.Ledger{UserID: "test-user"},
			&models.TierState{UserID: "test-user", CurrentTierLevel: 1},
		)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrProfileExists)
		mockClient.AssertExpectations(t)
	})
}

func TestCreditPoints(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, testTables())
		err := store.CreditPoints(context.Background(), "test-user", 500)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Negative Amount Rejected", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := New(mockClient, testTables())
		err := store.CreditPoints(context.Background(), "test-user", -1)

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "UpdateItem")
	})

	t.Run("Ledger Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables())
		err := store.CreditPoints(context.Background(), "test-user", 500)

		assert.ErrorIs(t, err, storage.ErrLedgerNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestDebitPoints(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_exists(user_id) AND balance >= :amount"
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, testTables())
		err := store.DebitPoints(context.Background(), "test-user", 2500)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Points", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables())
		err := store.DebitPoints(context.Background(), "test-user", 2500)

		assert.ErrorIs(t, err, storage.ErrInsufficientPoints)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, testTables())
		err := store.DebitPoints(context.Background(), "test-user", 2500)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to debit ledger")
		mockClient.AssertExpectations(t)
	})
}
