package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store stores archives in an S3 bucket. Open returns a presigned URL
// instead of a reader, so download handlers redirect rather than stream.
type S3Store struct {
	client    *s3.Client
	bucket    string
	prefix    string
	urlExpiry time.Duration
}

// NewS3Store creates an S3-backed archive store.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		urlExpiry: 15 * time.Minute,
	}
}

// Save uploads zipped bytes and returns the new archive ID.
func (s *S3Store) Save(project string, r io.Reader) (string, error) {
	id, err := newArchiveID()
	if err != nil {
		return "", err
	}

	// PutObject needs a known content length, so buffer the archive.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading archive: %w", err)
	}

	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/zip"),
		Metadata: map[string]string{
			"project": project,
		},
	})
	if err != nil {
		return "", fmt.Errorf("uploading archive: %w", err)
	}

	return id, nil
}

// Open retrieves archive metadata and a presigned download URL.
func (s *S3Store) Open(id string) (*Archive, error) {
	ctx := context.Background()
	key := s.key(id)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("checking archive: %w", err)
	}

	presigner := s3.NewPresignClient(s.client)
	presigned, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return nil, fmt.Errorf("presigning archive URL: %w", err)
	}

	return &Archive{
		ID:        id,
		Project:   head.Metadata["project"],
		Size:      aws.ToInt64(head.ContentLength),
		URL:       presigned.URL,
		CreatedAt: aws.ToTime(head.LastModified),
	}, nil
}

// Cleanup removes archives older than maxAge.
func (s *S3Store) Cleanup(maxAge time.Duration) error {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-maxAge)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("listing archives: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.LastModified == nil || obj.LastModified.After(cutoff) {
				continue
			}
			_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return fmt.Errorf("deleting archive %s: %w", aws.ToString(obj.Key), err)
			}
		}
	}

	return nil
}

func (s *S3Store) key(id string) string {
	return path.Join(s.prefix, id+".zip")
}
