package registration

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"go.uber.org/zap"
)

// Document is one verification file attached to a mentor signup: a license
// scan, logbook extract, or certificate. Data is base64, optionally a data
// URI.
type Document struct {
	Data        string
	ContentType string
	Filename    string
}

// DocumentUploader stores signup documents and returns their public URLs
type DocumentUploader interface {
	UploadDocument(ctx context.Context, documentData, key, contentType string) (string, error)
	ValidateDocumentType(contentType string) error
	ValidateDocumentSize(documentData string) error
}

// MentorCreator registers the mentor on the backend
type MentorCreator interface {
	Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error)
}

// Service drives mentor signup: verification documents are uploaded first,
// and the mentor record is created carrying their URLs. Documents are
// optional; a signup with none skips storage entirely.
type Service struct {
	mentors   MentorCreator
	documents DocumentUploader
}

// NewService creates a registration service. documents may be nil when no
// object storage is configured; signups with attachments are then rejected.
func NewService(mentors MentorCreator, documents DocumentUploader) *Service {
	return &Service{mentors: mentors, documents: documents}
}

// RegisterMentor uploads the documents and creates the mentor. Nothing is
// created on the backend if any upload fails.
func (s *Service) RegisterMentor(ctx context.Context, req *models.CreateMentorRequest, docs []Document) (*models.Mentor, error) {
	if len(docs) > 0 && s.documents == nil {
		return nil, errors.InvalidInputError("documents", "document storage is not configured")
	}

	urls := make([]string, 0, len(docs))
	for i, doc := range docs {
		if err := s.documents.ValidateDocumentType(doc.ContentType); err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		if err := s.documents.ValidateDocumentSize(doc.Data); err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}

		key := documentKey(doc.ContentType)
		url, err := s.documents.UploadDocument(ctx, doc.Data, key, doc.ContentType)
		if err != nil {
			return nil, fmt.Errorf("uploading document %d: %w", i+1, err)
		}
		urls = append(urls, url)
	}

	if len(urls) > 0 {
		req.Documents = urls
	}

	mentor, err := s.mentors.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Mentor registered",
		zap.String("mentor_id", mentor.ID),
		zap.Int("document_count", len(urls)))
	return mentor, nil
}

// documentKey builds a collision-free object key under the mentors/ prefix
func documentKey(contentType string) string {
	ext := ".bin"
	switch strings.ToLower(contentType) {
	case "application/pdf":
		ext = ".pdf"
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	return "mentors/" + uuid.NewString() + ext
}
