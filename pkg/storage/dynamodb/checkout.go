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

// maxCheckoutItems bounds a cart so the whole commit fits in one DynamoDB
// transaction (100 transact items; each cart line costs three plus the
// shared ledger debit).
const maxCheckoutItems = 25

// CheckoutCart commits a batch of redemptions in a single atomic transaction:
// one ledger debit for the combined cost, a stock decrement per voucher and a
// redemption record plus coupon registration per item. A failure on any item
// rolls back the entire cart.
func (s *Store) CheckoutCart(ctx context.Context, userID string, items []models.CartItem, codes []string) ([]models.Redemption, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	if len(items) > maxCheckoutItems {
		return nil, fmt.Errorf("cart exceeds %d items", maxCheckoutItems)
	}
	if len(codes) != len(items) {
		return nil, fmt.Errorf("expected %d coupon codes, got %d", len(items), len(codes))
	}

	// 1. Read the ledger and every voucher in the cart.
	ledger, err := s.GetLedger(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger for checkout: %w", err)
	}

	vouchers := make([]*models.Voucher, len(items))
	var totalCost int64
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("checkout quantity must be positive, got %d", item.Quantity)
		}
		voucher, err := s.GetVoucher(ctx, item.VoucherID)
		if err != nil {
			return nil, fmt.Errorf("failed to get voucher %s for checkout: %w", item.VoucherID, err)
		}
		if !voucher.IsActive {
			return nil, fmt.Errorf("voucher %s: %w", voucher.Title, storage.ErrVoucherUnavailable)
		}
		if voucher.QuantityAvailable < item.Quantity {
			return nil, fmt.Errorf("voucher %s: %w", voucher.Title, storage.ErrInsufficientStock)
		}
		vouchers[i] = voucher
		totalCost += voucher.PointsCost * item.Quantity
	}

	// 2. Validate the combined cost against the balance once.
	if ledger.Balance < totalCost {
		return nil, storage.ErrInsufficientPoints
	}

	now := time.Now().UTC()
	nowAV := &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)}

	// 3. Construct the transaction: ledger debit first, then three writes per item.
	transactItems := []types.TransactWriteItem{
		{
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
	}

	redemptions := make([]models.Redemption, len(items))
	for i, item := range items {
		voucher := vouchers[i]
		redemption := models.Redemption{
			ID:           uuid.New().String(),
			UserID:       userID,
			VoucherID:    voucher.ID,
			VoucherTitle: voucher.Title,
			Quantity:     item.Quantity,
			PointsUsed:   voucher.PointsCost * item.Quantity,
			CouponCode:   codes[i],
			Status:       models.COMPLETED,
			CreatedAt:    now,
			CompletedAt:  &now,
		}
		redemptions[i] = redemption

		redemptionAV, err := attributevalue.MarshalMap(&redemption)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal redemption for voucher %s: %w", voucher.ID, err)
		}
		codeAV, err := attributevalue.MarshalMap(&models.CouponCode{
			Code:         codes[i],
			RedemptionID: redemption.ID,
			UserID:       userID,
			CreatedAt:    now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal coupon code for voucher %s: %w", voucher.ID, err)
		}

		transactItems = append(transactItems,
			types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(s.Tables.Vouchers),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: voucher.ID},
					},
					UpdateExpression:    aws.String("SET quantity_available = quantity_available - :quantity, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("quantity_available >= :quantity AND is_active = :active"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":quantity": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", item.Quantity)},
						":active":   &types.AttributeValueMemberBOOL{Value: true},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
						":now":      nowAV,
					},
				},
			},
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Redemptions),
					Item:                redemptionAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.CouponCodes),
					Item:                codeAV,
					ConditionExpression: aws.String("attribute_not_exists(code)"),
				},
			},
		)
	}

	// 4. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems})
	if err != nil {
		if mapped := mapCheckoutCancellation(err, len(items), vouchers); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to execute checkout transaction: %w", err)
	}

	return redemptions, nil
}

// mapCheckoutCancellation translates a transaction cancellation into the
// typed error for the guard that was violated. Item layout: index 0 is the
// ledger debit; cart item i occupies indices 1+3i (stock), 2+3i (redemption
// put) and 3+3i (coupon registration).
func mapCheckoutCancellation(err error, itemCount int, vouchers []*models.Voucher) error {
	if cancelledAt(err, 0) {
		return storage.ErrInsufficientPoints
	}
	for i := 0; i < itemCount; i++ {
		if cancelledAt(err, 1+3*i) {
			return fmt.Errorf("voucher %s: %w", vouchers[i].Title, storage.ErrInsufficientStock)
		}
		if cancelledAt(err, 3+3*i) {
			return storage.ErrCouponCollision
		}
	}
	return nil
}
