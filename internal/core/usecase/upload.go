package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/core/ports"
)

const (
	msgNoFileSelected = "Please select a file to upload."
	msgUploadFailed   = "An error occurred while uploading the file."
)

// UploadFlow owns the single-document workflow: file selection, submission,
// result normalization and the user-visible error surface. State is owned
// exclusively by this flow; only one submission may be in flight.
type UploadFlow struct {
	backend ports.ClassifierService
	logger  *slog.Logger

	mu     sync.Mutex
	file   *domain.FilePayload
	phase  Phase
	record *domain.ClassificationRecord
	errMsg string
}

func NewUploadFlow(backend ports.ClassifierService, logger *slog.Logger) *UploadFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadFlow{backend: backend, logger: logger}
}

// SelectFile stages a document for upload and clears any previous error.
func (f *UploadFlow) SelectFile(file domain.FilePayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	staged := file
	f.file = &staged
	f.errMsg = ""
	if f.phase == PhaseFailed {
		f.phase = PhaseIdle
	}
}

// SelectedFile reports the name of the staged file, if any.
func (f *UploadFlow) SelectedFile() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return "", false
	}
	return f.file.Name, true
}

// Submit uploads the staged file and stores the normalized record. It fails
// fast without touching the network when no file is staged or another
// submission is still in flight. The staged file is consumed only on success.
func (f *UploadFlow) Submit(ctx context.Context) (*domain.ClassificationRecord, error) {
	f.mu.Lock()
	if f.phase == PhaseLoading {
		f.mu.Unlock()
		return nil, domain.WrapError(domain.ErrValidation, "single upload", fmt.Errorf("submission already in flight"))
	}
	if f.file == nil {
		f.phase = PhaseFailed
		f.errMsg = msgNoFileSelected
		f.mu.Unlock()
		return nil, domain.WrapError(domain.ErrValidation, "single upload", fmt.Errorf("no file selected"))
	}
	file := *f.file
	f.phase = PhaseLoading
	f.errMsg = ""
	f.mu.Unlock()

	raw, err := f.backend.Upload(ctx, file)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.errMsg = domain.ErrorDetail(err, msgUploadFailed)
		f.logger.Error("upload_failed", "filename", file.Name, "error", err)
		return nil, err
	}

	record := domain.Normalize(raw)
	f.record = &record
	f.file = nil
	f.phase = PhaseSuccess
	f.logger.Info("upload_classified",
		"filename", record.Filename,
		"classification", record.Classification,
		"language", record.Language,
	)
	result := record
	return &result, nil
}

// Record returns a copy of the most recent classification result, if any.
func (f *UploadFlow) Record() *domain.ClassificationRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return nil
	}
	record := *f.record
	return &record
}

// DetectedLanguage is the read-only language feed the chat flow consumes.
// It reports "unknown" until a document has been classified.
func (f *UploadFlow) DetectedLanguage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return domain.ChatLanguageUnknown
	}
	return f.record.Language
}

func (f *UploadFlow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// ErrorMessage is the single user-visible error banner for this flow.
func (f *UploadFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
