package blob

import (
	"context"
	"errors"
	"io"
	"testing"

	"oscell/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Archive_Store(t *testing.T) {
	t.Run("puts object", func(t *testing.T) {
		client := &fakePutter{}
		a := NewS3Archive(client, "work-orders")

		if err := a.Store(context.Background(), "work-orders/Ordem_Servico_226.pdf", []byte("%PDF"), "application/pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(client.input.Bucket) != "work-orders" || aws.ToString(client.input.Key) != "work-orders/Ordem_Servico_226.pdf" {
			t.Fatalf("unexpected input: %+v", client.input)
		}
		if aws.ToString(client.input.ContentType) != "application/pdf" || string(client.body) != "%PDF" {
			t.Fatalf("unexpected body or content type")
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		a := NewS3Archive(&fakePutter{err: errors.New("denied")}, "b")
		if err := a.Store(context.Background(), "k", nil, ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOpenS3Archive_RequiresBucket(t *testing.T) {
	if _, err := OpenS3Archive(context.Background(), config.ArchiveConfig{}); !errors.Is(err, ErrBucketRequired) {
		t.Fatalf("expected ErrBucketRequired, got %v", err)
	}
}
