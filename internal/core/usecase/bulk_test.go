package usecase

import (
	"context"
	"testing"

	"github.com/ceasedesk/console/internal/core/domain"
)

func TestBulkSubmitWithoutFilesFailsFast(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewBulkUploadFlow(backend, nil)

	_, err := flow.Submit(context.Background())
	if err == nil || !domain.IsKind(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.bulkCalls != 0 {
		t.Fatalf("validation failure must not contact the backend")
	}
	if flow.ErrorMessage() != "Please select at least one file to upload." {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
}

func TestBulkSubmitKeepsPerFileErrorsInOrder(t *testing.T) {
	backend := &fakeBackend{
		bulkResp: []domain.BulkFileResult{
			{UploadResponse: domain.UploadResponse{Filename: "a.pdf", Classification: "Cease", Language: "English"}},
			{UploadResponse: domain.UploadResponse{Filename: "b.pdf"}, Error: "corrupt file"},
			{UploadResponse: domain.UploadResponse{Filename: "c.pdf", Classification: "'Irrelevant'"}},
		},
	}
	flow := NewBulkUploadFlow(backend, nil)
	flow.SelectFiles([]domain.FilePayload{
		{Name: "a.pdf"}, {Name: "b.pdf"}, {Name: "c.pdf"},
	})

	entries, err := flow.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Filename != "a.pdf" || entries[0].Classification != "Cease" {
		t.Fatalf("entry 0 = %+v", entries[0])
	}
	if entries[1].Filename != "b.pdf" || entries[1].Err != "corrupt file" {
		t.Fatalf("entry 1 = %+v", entries[1])
	}
	if entries[1].Classification != "" {
		t.Fatalf("errored entry must not carry result fields: %+v", entries[1])
	}
	if entries[2].Classification != "Irrelevant" || entries[2].Action != "Archived successfully." {
		t.Fatalf("entry 2 = %+v", entries[2])
	}
	if flow.SelectedCount() != 0 {
		t.Fatalf("file list must be cleared on success")
	}
	if len(backend.lastBulkFiles) != 3 {
		t.Fatalf("all files must go out in one request, got %d", len(backend.lastBulkFiles))
	}
}

func TestBulkTransportFailureReportsWholeBatch(t *testing.T) {
	backend := &fakeBackend{
		bulkErr: &domain.TransportError{Operation: "bulk_upload", StatusCode: 503, Detail: "classifier unavailable"},
	}
	flow := NewBulkUploadFlow(backend, nil)
	flow.SelectFiles([]domain.FilePayload{{Name: "a.pdf"}, {Name: "b.pdf"}})

	if _, err := flow.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if flow.ErrorMessage() != "classifier unavailable" {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
	if got := flow.Results(); len(got) != 0 {
		t.Fatalf("transport failure must retain no partial results, got %d", len(got))
	}
	if flow.SelectedCount() != 2 {
		t.Fatalf("file list must be kept on failure, got %d", flow.SelectedCount())
	}
}

func TestBulkSelectFilesReplacesPriorList(t *testing.T) {
	flow := NewBulkUploadFlow(&fakeBackend{}, nil)
	flow.SelectFiles([]domain.FilePayload{{Name: "a.pdf"}, {Name: "b.pdf"}})
	flow.SelectFiles([]domain.FilePayload{{Name: "c.pdf"}})
	if flow.SelectedCount() != 1 {
		t.Fatalf("expected replacement, got %d files", flow.SelectedCount())
	}
}
