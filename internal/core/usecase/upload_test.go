package usecase

import (
	"context"
	"testing"

	"github.com/ceasedesk/console/internal/core/domain"
)

func TestUploadSubmitWithoutFileFailsFast(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewUploadFlow(backend, nil)

	_, err := flow.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Fatalf("expected validation kind, got %v", err)
	}
	if backend.uploadCalls != 0 {
		t.Fatalf("validation failure must not contact the backend, got %d calls", backend.uploadCalls)
	}
	if flow.ErrorMessage() != "Please select a file to upload." {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
}

func TestUploadSubmitNormalizesDoubleQuotedClassification(t *testing.T) {
	backend := &fakeBackend{
		uploadResp: domain.UploadResponse{
			Classification: "'Cease'",
			Filename:       "letter.pdf",
			Language:       "French",
		},
	}
	flow := NewUploadFlow(backend, nil)
	flow.SelectFile(domain.FilePayload{Name: "letter.pdf", Content: []byte("body")})

	record, err := flow.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if record.Classification != "Cease" {
		t.Fatalf("classification = %q, want Cease", record.Classification)
	}
	if record.Action != "Details have been written to the datastore." {
		t.Fatalf("action = %q", record.Action)
	}
	if flow.Phase() != PhaseSuccess {
		t.Fatalf("phase = %s", flow.Phase())
	}
	if _, staged := flow.SelectedFile(); staged {
		t.Fatalf("staged file must be cleared on success")
	}
	if backend.lastUploadFile.Name != "letter.pdf" {
		t.Fatalf("uploaded file = %q", backend.lastUploadFile.Name)
	}
}

func TestUploadSubmitSurfacesBackendDetail(t *testing.T) {
	backend := &fakeBackend{
		uploadErr: &domain.TransportError{Operation: "upload", StatusCode: 422, Detail: "unsupported file type"},
	}
	flow := NewUploadFlow(backend, nil)
	flow.SelectFile(domain.FilePayload{Name: "weird.bin"})

	if _, err := flow.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if flow.ErrorMessage() != "unsupported file type" {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
	if flow.Phase() != PhaseFailed {
		t.Fatalf("phase = %s, loading indicator must be cleared", flow.Phase())
	}
	if _, staged := flow.SelectedFile(); !staged {
		t.Fatalf("staged file must be kept on failure")
	}
}

func TestUploadSubmitFallsBackToGenericMessage(t *testing.T) {
	backend := &fakeBackend{
		uploadErr: &domain.TransportError{Operation: "upload"},
	}
	flow := NewUploadFlow(backend, nil)
	flow.SelectFile(domain.FilePayload{Name: "scan.pdf"})

	if _, err := flow.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if flow.ErrorMessage() != "An error occurred while uploading the file." {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
}

func TestUploadSelectFileClearsPriorError(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewUploadFlow(backend, nil)

	_, _ = flow.Submit(context.Background())
	if flow.ErrorMessage() == "" {
		t.Fatalf("expected error banner before reselect")
	}

	flow.SelectFile(domain.FilePayload{Name: "retry.pdf"})
	if flow.ErrorMessage() != "" {
		t.Fatalf("SelectFile must clear the prior error, got %q", flow.ErrorMessage())
	}
	if flow.Phase() != PhaseIdle {
		t.Fatalf("phase = %s", flow.Phase())
	}
}

func TestUploadDetectedLanguageDefaultsToUnknown(t *testing.T) {
	flow := NewUploadFlow(&fakeBackend{}, nil)
	if got := flow.DetectedLanguage(); got != "unknown" {
		t.Fatalf("DetectedLanguage() = %q, want unknown", got)
	}
}
