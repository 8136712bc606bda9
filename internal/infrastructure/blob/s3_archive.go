package blob

import (
	"bytes"
	"context"
	"errors"
	"log"

	"oscell/internal/config"
	"oscell/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBucketRequired = errors.New("archive bucket required")

// PutObjectAPI is the part of *s3.Client the archive needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive keeps downloaded work orders in an S3-compatible bucket (AWS S3
// or MinIO). Objects are overwritten when the same number is downloaded
// twice.
type S3Archive struct {
	client PutObjectAPI
	bucket string
}

var _ interfaces.IDocumentArchive = (*S3Archive)(nil)

func NewS3Archive(client PutObjectAPI, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket}
}

// OpenS3Archive builds the S3 client from the archive configuration.
func OpenS3Archive(ctx context.Context, cfg config.ArchiveConfig) (*S3Archive, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	log.Printf("[archive][s3] enabled bucket=%s endpoint=%q", cfg.Bucket, cfg.Endpoint)
	return NewS3Archive(client, cfg.Bucket), nil
}

func (a *S3Archive) Store(ctx context.Context, key string, content []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := a.client.PutObject(ctx, input)
	return err
}
