package dynamodb

import (
	"context"
	"errors"
	"regexp"
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

func ledgerOutput(t *testing.T, balance int64) *dynamodb.GetItemOutput {
	t.Helper()
	av, err := attributevalue.MarshalMap(&models.Ledger{UserID: "user1", Balance: balance, Version: 3})
	assert.NoError(t, err)
	return &dynamodb.GetItemOutput{Item: av}
}

func voucherOutput(t *testing.T, voucher *models.Voucher) *dynamodb.GetItemOutput {
	t.Helper()
	av, err := attributevalue.MarshalMap(voucher)
	assert.NoError(t, err)
	return &dynamodb.GetItemOutput{Item: av}
}

func activeVoucher(cost, stock int64) *models.Voucher {
	return &models.Voucher{
		ID:                "voucher1",
		Title:             "Coffee Voucher",
		PointsCost:        cost,
		QuantityAvailable: stock,
		IsActive:          true,
		Version:           2,
	}
}

// expectReads wires GetItem to return the ledger for ledger-table reads and
// the voucher otherwise.
func expectReads(mockClient *mocks.DynamoDBAPI, ledgerOut, voucherOut *dynamodb.GetItemOutput) {
	mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return *input.TableName == "ledgers"
	})).Return(ledgerOut, nil)
	mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return *input.TableName == "vouchers"
	})).Return(voucherOut, nil)
}

func TestRedeemVoucher(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 5)))

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, testTables())
		redemption, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.NoError(t, err)
		assert.Equal(t, int64(2500), redemption.PointsUsed)
		assert.Equal(t, models.COMPLETED, redemption.Status)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), redemption.CouponCode)
		assert.NotNil(t, redemption.CompletedAt)

		// One transaction with all four writes: debit, decrement, record, code.
		assert.Len(t, captured.TransactItems, 4)
		assert.NotNil(t, captured.TransactItems[0].Update)
		assert.NotNil(t, captured.TransactItems[1].Update)
		assert.NotNil(t, captured.TransactItems[2].Put)
		assert.NotNil(t, captured.TransactItems[3].Put)
		assert.Equal(t, "balance >= :cost", *captured.TransactItems[0].Update.ConditionExpression)
		assert.Equal(t, "quantity_available >= :quantity AND is_active = :active", *captured.TransactItems[1].Update.ConditionExpression)
		assert.Equal(t, "attribute_not_exists(code)", *captured.TransactItems[3].Put.ConditionExpression)

		mockClient.AssertExpectations(t)
	})

	t.Run("Guards Depend Only On Balance And Stock", func(t *testing.T) {
		// The debit and decrement are relative updates, so the guards must not
		// reference the row versions: another writer bumping the voucher row
		// concurrently would otherwise cancel a redemption that has plenty of
		// stock left.
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 10)))

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.NoError(t, err)
		for _, item := range captured.TransactItems[:2] {
			assert.NotContains(t, *item.Update.ConditionExpression, ":version")
			assert.NotContains(t, item.Update.ExpressionAttributeValues, ":version")
		}
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Balance Aborts Before Mutation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 1000), voucherOutput(t, activeVoucher(2500, 5)))

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrInsufficientPoints)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Insufficient Stock Aborts Before Mutation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 0)))

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrInsufficientStock)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Inactive Voucher", func(t *testing.T) {
		voucher := activeVoucher(2500, 5)
		voucher.IsActive = false
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, voucher))

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrVoucherUnavailable)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Concurrent Debit Loses The Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 5)))
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		})

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrInsufficientPoints)
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Stock Decrement Loses The Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 1)))
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
			},
		})

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrInsufficientStock)
		mockClient.AssertExpectations(t)
	})

	t.Run("Coupon Collision", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 5)))
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.ErrorIs(t, err, storage.ErrCouponCollision)
		mockClient.AssertExpectations(t)
	})

	t.Run("Commit Failure Leaves No Partial State", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		expectReads(mockClient, ledgerOutput(t, 10000), voucherOutput(t, activeVoucher(2500, 5)))
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction conflict"))

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 1, "ABCD1234")

		assert.Error(t, err)
		// All four writes travel in the one transaction; no single-item
		// writes happen on this path, so a commit failure mutates nothing.
		mockClient.AssertNotCalled(t, "UpdateItem")
		mockClient.AssertNotCalled(t, "PutItem")
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Quantity", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := New(mockClient, testTables())
		_, err := store.RedeemVoucher(context.Background(), "user1", "voucher1", 0, "ABCD1234")

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "GetItem")
	})
}
