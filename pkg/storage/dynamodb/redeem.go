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

// RedeemVoucher atomically debits the user's ledger, decrements the voucher's
// stock, writes the redemption record and registers the coupon code. The four
// writes are a single DynamoDB transaction: either all apply or none do.
//
// The debit and decrement are relative updates guarded server-side by
// balance >= cost and quantity_available >= quantity, so concurrent
// redemptions against the same ledger or voucher serialize on the rows and a
// condition failure always means the funds or the stock genuinely ran out.
func (s *Store) RedeemVoucher(ctx context.Context, userID, voucherID string, quantity int64, couponCode string) (*models.Redemption, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("redemption quantity must be positive, got %d", quantity)
	}

	// 1. Read the current state of the ledger and the voucher.
	ledger, err := s.GetLedger(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger for redemption: %w", err)
	}
	voucher, err := s.GetVoucher(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voucher for redemption: %w", err)
	}

	// 2. Validation phase: abort before any mutation.
	if !voucher.IsActive {
		return nil, storage.ErrVoucherUnavailable
	}
	totalCost := voucher.PointsCost * quantity
	if voucher.QuantityAvailable < quantity {
		return nil, storage.ErrInsufficientStock
	}
	if ledger.Balance < totalCost {
		return nil, storage.ErrInsufficientPoints
	}

	// 3. Complete the redemption object with server-side details.
	now := time.Now().UTC()
	redemption := &models.Redemption{
		ID:           uuid.New().String(),
		UserID:       userID,
		VoucherID:    voucher.ID,
		VoucherTitle: voucher.Title,
		Quantity:     quantity,
		PointsUsed:   totalCost,
		CouponCode:   couponCode,
		Status:       models.COMPLETED,
		CreatedAt:    now,
		CompletedAt:  &now,
	}

	redemptionAV, err := attributevalue.MarshalMap(redemption)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redemption: %w", err)
	}
	codeAV, err := attributevalue.MarshalMap(&models.CouponCode{
		Code:         couponCode,
		RedemptionID: redemption.ID,
		UserID:       userID,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal coupon code: %w", err)
	}

	nowAV := &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)}

	// 4. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the user's ledger.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Ledgers),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression:    aws.String("SET balance = balance - :cost, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("balance >= :cost"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cost": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", totalCost)},
						":inc":  &types.AttributeValueMemberN{Value: "1"},
						":now":  nowAV,
					},
				},
			},
			{
				// Operation 2: Decrement the voucher's stock.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Vouchers),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: voucher.ID},
					},
					UpdateExpression:    aws.String("SET quantity_available = quantity_available - :quantity, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("quantity_available >= :quantity AND is_active = :active"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":quantity": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", quantity)},
						":active":   &types.AttributeValueMemberBOOL{Value: true},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
						":now":      nowAV,
					},
				},
			},
			{
				// Operation 3: Create the redemption record.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Redemptions),
					Item:                redemptionAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 4: Register the coupon code. The attribute_not_exists
				// guard is what makes coupon codes globally unique.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.CouponCodes),
					Item:                codeAV,
					ConditionExpression: aws.String("attribute_not_exists(code)"),
				},
			},
		},
	}

	// 5. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		switch {
		case cancelledAt(err, 0):
			return nil, storage.ErrInsufficientPoints
		case cancelledAt(err, 1):
			return nil, storage.ErrInsufficientStock
		case cancelledAt(err, 3):
			return nil, storage.ErrCouponCollision
		}
		return nil, fmt.Errorf("failed to execute redemption transaction: %w", err)
	}

	return redemption, nil
}
