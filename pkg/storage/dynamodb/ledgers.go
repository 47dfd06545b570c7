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

// GetLedger retrieves a user's points ledger from DynamoDB by their user ID.
func (s *Store) GetLedger(ctx context.Context, userID string) (*models.Ledger, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Ledgers),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrLedgerNotFound
	}

	var ledger models.Ledger
	if err := attributevalue.UnmarshalMap(result.Item, &ledger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger: %w", err)
	}

	return &ledger, nil
}

// CreateProfile creates a user's ledger and initial tier state in a single
// transaction. Both puts are guarded with attribute_not_exists, so a
// concurrent first contact commits exactly one profile and the loser sees
// ErrProfileExists instead of a half-written pair of rows.
func (s *Store) CreateProfile(ctx context.Context, ledger *models.Ledger, state *models.TierState) (*models.Ledger, *models.TierState, error) {
	now := time.Now().UTC()
	ledger.Version = 1
	ledger.CreatedAt = now
	ledger.UpdatedAt = now
	state.Version = 1
	state.TierStartDate = now

	ledgerAV, err := attributevalue.MarshalMap(ledger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ledger: %w", err)
	}
	stateAV, err := attributevalue.MarshalMap(state)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal tier state: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledgers),
					Item:                ledgerAV,
					ConditionExpression: aws.String("attribute_not_exists(user_id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.TierStates),
					Item:                stateAV,
					ConditionExpression: aws.String("attribute_not_exists(user_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancelledAt(err, 0) || cancelledAt(err, 1) {
			return nil, nil, storage.ErrProfileExists
		}
		return nil, nil, fmt.Errorf("failed to create profile in DynamoDB: %w", err)
	}

	return ledger, state, nil
}

// CreditPoints atomically increases a user's spendable balance.
func (s *Store) CreditPoints(ctx context.Context, userID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("credit amount must be non-negative, got %d", amount)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Ledgers),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":inc":    &types.AttributeValueMemberN{Value: "1"},
			":now":    &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339Nano)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrLedgerNotFound
		}
		return fmt.Errorf("failed to credit ledger: %w", err)
	}

	return nil
}

// DebitPoints atomically decreases a user's spendable balance. The balance
// guard runs server-side, so concurrent debits cannot drive it negative.
func (s *Store) DebitPoints(ctx context.Context, userID string, amount int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Ledgers),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET balance = balance - :amount, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(user_id) AND balance >= :amount"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":inc":    &types.AttributeValueMemberN{Value: "1"},
			":now":    &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339Nano)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrInsufficientPoints
		}
		return fmt.Errorf("failed to debit ledger: %w", err)
	}

	return nil
}
