package ports

import (
	"context"

	"github.com/ceasedesk/console/internal/core/domain"
)

// ClassifierService is the outbound contract for the document-classification
// backend (upload, bulk upload, chat, dashboard metrics).
type ClassifierService interface {
	Upload(ctx context.Context, file domain.FilePayload) (domain.UploadResponse, error)
	BulkUpload(ctx context.Context, files []domain.FilePayload) ([]domain.BulkFileResult, error)
	Chat(ctx context.Context, messages []domain.ChatMessage, language string) (string, error)
	DashboardMetrics(ctx context.Context) (domain.DashboardSnapshot, error)
}

// TableExporter writes a review table to a local artifact.
type TableExporter interface {
	Export(path, sheet string, columns []string, rows []domain.ReviewRow) error
}
