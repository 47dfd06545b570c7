package documents

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by the renderer.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// voucherTemplate is the plain-text body of a rendered voucher document.
var voucherTemplate = template.Must(template.New("voucher").Parse(
	`VOUCHER REDEMPTION RECEIPT

Redemption: {{.RedemptionID}}
Voucher:    {{.VoucherTitle}}
Quantity:   {{.Quantity}}
Coupon:     {{.CouponCode}}
Points:     {{.PointsUsed}}
Completed:  {{.CompletedAt}}

Present the coupon code above at participating locations.
`))

// S3Renderer implements the Renderer interface by writing voucher documents
// into an S3 bucket.
type S3Renderer struct {
	Client S3API
	Bucket string
}

// NewS3Renderer creates a new S3Renderer.
func NewS3Renderer(client S3API, bucket string) *S3Renderer {
	return &S3Renderer{
		Client: client,
		Bucket: bucket,
	}
}

// Make sure we conform to the interface
var _ Renderer = (*S3Renderer)(nil)

// Render writes the voucher document to S3 and returns its object reference.
// Keys are derived from the redemption ID, so re-rendering the same
// redemption overwrites the same object instead of accumulating copies.
func (r *S3Renderer) Render(ctx context.Context, req *RenderRequest) (string, error) {
	var body bytes.Buffer
	if err := voucherTemplate.Execute(&body, req); err != nil {
		return "", fmt.Errorf("failed to render voucher document: %w", err)
	}

	key := fmt.Sprintf("vouchers/%s/%s.txt", req.UserID, req.RedemptionID)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload voucher document to S3: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", r.Bucket, key), nil
}
