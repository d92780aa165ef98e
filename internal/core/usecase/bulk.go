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
	msgNoFilesSelected = "Please select at least one file to upload."
	msgBulkFailed      = "An error occurred while uploading the files."
)

// BulkUploadFlow owns the batch workflow: an ordered file list submitted as
// one multipart request, with per-file results stored in backend order.
type BulkUploadFlow struct {
	backend ports.ClassifierService
	logger  *slog.Logger

	mu      sync.Mutex
	files   []domain.FilePayload
	phase   Phase
	results []domain.BulkResultEntry
	errMsg  string
}

func NewBulkUploadFlow(backend ports.ClassifierService, logger *slog.Logger) *BulkUploadFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkUploadFlow{backend: backend, logger: logger}
}

// SelectFiles replaces the staged file list and clears any previous error.
func (f *BulkUploadFlow) SelectFiles(files []domain.FilePayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = append([]domain.FilePayload(nil), files...)
	f.errMsg = ""
	if f.phase == PhaseFailed {
		f.phase = PhaseIdle
	}
}

// SelectedCount reports how many files are staged.
func (f *BulkUploadFlow) SelectedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.files)
}

// Submit sends all staged files as a single request. Per-file errors come
// back inside the result list and are kept per-row; a transport-level failure
// reports the whole batch as one error and retains no partial results. The
// staged list is cleared only on success.
func (f *BulkUploadFlow) Submit(ctx context.Context) ([]domain.BulkResultEntry, error) {
	f.mu.Lock()
	if f.phase == PhaseLoading {
		f.mu.Unlock()
		return nil, domain.WrapError(domain.ErrValidation, "bulk upload", fmt.Errorf("submission already in flight"))
	}
	if len(f.files) == 0 {
		f.phase = PhaseFailed
		f.errMsg = msgNoFilesSelected
		f.mu.Unlock()
		return nil, domain.WrapError(domain.ErrValidation, "bulk upload", fmt.Errorf("no files selected"))
	}
	files := append([]domain.FilePayload(nil), f.files...)
	f.phase = PhaseLoading
	f.errMsg = ""
	f.mu.Unlock()

	raw, err := f.backend.BulkUpload(ctx, files)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.errMsg = domain.ErrorDetail(err, msgBulkFailed)
		f.logger.Error("bulk_upload_failed", "files", len(files), "error", err)
		return nil, err
	}

	entries := make([]domain.BulkResultEntry, 0, len(raw))
	for _, result := range raw {
		entries = append(entries, domain.NormalizeBulk(result))
	}
	f.results = entries
	f.files = nil
	f.phase = PhaseSuccess
	f.logger.Info("bulk_upload_classified", "files", len(files), "results", len(entries))
	return append([]domain.BulkResultEntry(nil), entries...), nil
}

// Results returns a copy of the most recent per-file result list, in the
// order the backend reported it.
func (f *BulkUploadFlow) Results() []domain.BulkResultEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.BulkResultEntry(nil), f.results...)
}

func (f *BulkUploadFlow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// ErrorMessage is the single user-visible error banner for this flow.
func (f *BulkUploadFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
