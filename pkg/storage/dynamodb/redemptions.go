package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/storage"
)

const (
	redemptionUserIndex   = "user_id-created_at-index"
	redemptionStatusIndex = "status-created_at-index"
)

// GetRedemption retrieves a redemption by its ID.
func (s *Store) GetRedemption(ctx context.Context, redemptionID string) (*models.Redemption, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": redemptionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redemption ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Redemptions),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get redemption from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrRedemptionNotFound
	}

	var redemption models.Redemption
	if err := attributevalue.UnmarshalMap(result.Item, &redemption); err != nil {
		return nil, fmt.Errorf("failed to unmarshal redemption: %w", err)
	}

	return &redemption, nil
}

// ListRedemptionsByUserID retrieves all redemptions for a user, newest first.
func (s *Store) ListRedemptionsByUserID(ctx context.Context, userID string) ([]models.Redemption, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Redemptions),
		IndexName:              aws.String(redemptionUserIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions: %w", err)
	}

	var redemptions []models.Redemption
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &redemptions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal redemptions: %w", err)
	}

	return redemptions, nil
}

// ListRedemptionsMissingDocument retrieves completed redemptions whose proof
// document has not been attached yet. Used by the reconciliation worker to
// retry document generation.
func (s *Store) ListRedemptionsMissingDocument(ctx context.Context, limit int32) ([]models.Redemption, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Redemptions),
		IndexName:              aws.String(redemptionStatusIndex),
		KeyConditionExpression: aws.String("#status = :completed"),
		FilterExpression:       aws.String("attribute_not_exists(document_ref)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
		},
		Limit: aws.Int32(limit),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions missing documents: %w", err)
	}

	var redemptions []models.Redemption
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &redemptions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal redemptions: %w", err)
	}

	return redemptions, nil
}

// AttachDocument sets the proof-document reference on a completed redemption.
// This runs outside the redemption transaction: a rendering failure never
// touches the committed financial state, it just leaves the reference empty
// for a later retry.
func (s *Store) AttachDocument(ctx context.Context, redemptionID, documentRef string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Redemptions),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: redemptionID},
		},
		UpdateExpression:    aws.String("SET document_ref = :ref"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":       &types.AttributeValueMemberS{Value: documentRef},
			":completed": &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrRedemptionNotFound
		}
		return fmt.Errorf("failed to attach document to redemption: %w", err)
	}

	return nil
}
