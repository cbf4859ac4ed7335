package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore archives rendered markdown exports of generated reports.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &MinioStore{client: client, bucket: bucket}, nil
}

// Exports are keyed per student so one student's reports list together.
func markdownKey(studentID, researchID string) string {
	return fmt.Sprintf("%s/%s.md", studentID, researchID)
}

// SaveMarkdown stores a rendered report export.
func (s *MinioStore) SaveMarkdown(ctx context.Context, studentID, researchID string, data []byte) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, markdownKey(studentID, researchID), reader, int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/markdown"})
	return err
}

// GetMarkdown retrieves a stored export.
func (s *MinioStore) GetMarkdown(ctx context.Context, studentID, researchID string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, markdownKey(studentID, researchID), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// RemoveMarkdown deletes a stored export.
func (s *MinioStore) RemoveMarkdown(ctx context.Context, studentID, researchID string) error {
	return s.client.RemoveObject(ctx, s.bucket, markdownKey(studentID, researchID), minio.RemoveObjectOptions{})
}
