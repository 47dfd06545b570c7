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

// GetVoucher retrieves a voucher from DynamoDB by its ID.
func (s *Store) GetVoucher(ctx context.Context, voucherID string) (*models.Voucher, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": voucherID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voucher ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Vouchers),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get voucher from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrVoucherNotFound
	}

	var voucher models.Voucher
	if err := attributevalue.UnmarshalMap(result.Item, &voucher); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voucher: %w", err)
	}

	return &voucher, nil
}

// ListVouchers retrieves all active vouchers from DynamoDB.
func (s *Store) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.Tables.Vouchers),
		FilterExpression: aws.String("is_active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers table: %w", err)
	}

	var vouchers []models.Voucher
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &vouchers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vouchers: %w", err)
	}

	return vouchers, nil
}

// DecrementStock atomically decreases a voucher's available quantity. The
// stock guard runs server-side, so concurrent decrements cannot drive the
// quantity negative.
func (s *Store) DecrementStock(ctx context.Context, voucherID string, quantity int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Vouchers),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: voucherID},
		},
		UpdateExpression:    aws.String("SET quantity_available = quantity_available - :quantity, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND quantity_available >= :quantity"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quantity": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", quantity)},
			":inc":      &types.AttributeValueMemberN{Value: "1"},
			":now":      &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrInsufficientStock
		}
		return fmt.Errorf("failed to decrement voucher stock: %w", err)
	}

	return nil
}

// PutVoucher creates or replaces a voucher catalog entry. Privileged
// seed-tooling path.
func (s *Store) PutVoucher(ctx context.Context, voucher *models.Voucher) error {
	now := time.Now().UTC()
	if voucher.CreatedAt.IsZero() {
		voucher.CreatedAt = now
	}
	voucher.UpdatedAt = now
	if voucher.Version == 0 {
		voucher.Version = 1
	}

	voucherAV, err := attributevalue.MarshalMap(voucher)
	if err != nil {
		return fmt.Errorf("failed to marshal voucher: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Vouchers),
		Item:      voucherAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put voucher in DynamoDB: %w", err)
	}

	return nil
}
