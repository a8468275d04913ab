package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"github.com/skymentor/skymentor-client/pkg/metrics"
	"go.uber.org/zap"
)

// DocumentStore uploads mentor documents (licenses, logbook extracts,
// certificates) to an S3-compatible bucket and returns public URLs for the
// mentor profile's documents field.
type DocumentStore struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// NewDocumentStore creates a new document store backed by an S3-compatible
// object storage service
func NewDocumentStore(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*DocumentStore, error) {
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, fmt.Errorf("storage credentials are required")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name is required")
	}
	if endpoint == "" {
		return nil, fmt.Errorf("storage endpoint is required")
	}
	if region == "" {
		region = "us-east-1"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Document storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &DocumentStore{
		s3Client:   s3Client,
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// UploadDocument uploads a base64-encoded document (optionally a data URI)
// and returns its public URL.
func (s *DocumentStore) UploadDocument(ctx context.Context, documentData, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadDocument"

	documentBytes, err := decodeBase64Payload(documentData)
	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(metrics.MeasureDuration(start))
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(documentBytes),
		ContentType: aws.String(contentType),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(documentBytes)),
	)

	// Public URL format: {endpoint}/{bucket}/{key}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, key), nil
}

// ValidateDocumentType checks the content type against the allowed set
func (s *DocumentStore) ValidateDocumentType(contentType string) error {
	validTypes := map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
	}

	if !validTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("invalid file type: %s. Allowed types: pdf, jpeg, jpg, png", contentType)
	}

	return nil
}

// ValidateDocumentSize checks the decoded payload size (max 10MB)
func (s *DocumentStore) ValidateDocumentSize(documentData string) error {
	const maxSize = 10 * 1024 * 1024 // 10MB

	documentBytes, err := decodeBase64Payload(documentData)
	if err != nil {
		return fmt.Errorf("failed to decode document for size validation: %w", err)
	}

	if len(documentBytes) > maxSize {
		return fmt.Errorf("file too large: %d bytes (max %d bytes)", len(documentBytes), maxSize)
	}

	return nil
}

// decodeBase64Payload decodes a raw base64 string or a data URI
// (data:application/pdf;base64,...)
func decodeBase64Payload(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid data URI format")
		}
		return base64.StdEncoding.DecodeString(parts[1])
	}
	return base64.StdEncoding.DecodeString(data)
}
