package usecase

import (
	"context"
	"testing"

	"github.com/ceasedesk/console/internal/core/domain"
)

type staticLanguage string

func (s staticLanguage) DetectedLanguage() string { return string(s) }

func TestChatSendBlankInputIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewChatFlow(backend, nil, nil)

	reply, err := flow.Send(context.Background(), "   ")
	if err != nil || reply != "" {
		t.Fatalf("Send() = %q, %v", reply, err)
	}
	if backend.chatCalls != 0 {
		t.Fatalf("blank input must not contact the backend")
	}
	if len(flow.Messages()) != 0 {
		t.Fatalf("blank input must not append a message")
	}
}

func TestChatSendCarriesDetectedLanguage(t *testing.T) {
	backend := &fakeBackend{chatReply: "Bonjour"}
	flow := NewChatFlow(backend, staticLanguage("French"), nil)

	if _, err := flow.Send(context.Background(), "Translate this letter"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if backend.lastChatLanguage != "French" {
		t.Fatalf("outgoing language = %q, want French", backend.lastChatLanguage)
	}
	messages := flow.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected user+assistant messages, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleUser || messages[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %+v", messages)
	}
	if messages[1].Content != "Bonjour" {
		t.Fatalf("assistant content = %q", messages[1].Content)
	}
}

func TestChatSendSendsWholeTranscript(t *testing.T) {
	backend := &fakeBackend{chatReply: "ok"}
	flow := NewChatFlow(backend, nil, nil)

	if _, err := flow.Send(context.Background(), "first"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := flow.Send(context.Background(), "second"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	// Second call must carry user+assistant+user.
	if len(backend.lastChatMessages) != 3 {
		t.Fatalf("outgoing transcript length = %d, want 3", len(backend.lastChatMessages))
	}
	if backend.lastChatMessages[2].Content != "second" {
		t.Fatalf("last outgoing message = %+v", backend.lastChatMessages[2])
	}
	if backend.lastChatLanguage != domain.ChatLanguageUnknown {
		t.Fatalf("language without a record = %q, want unknown", backend.lastChatLanguage)
	}
}

func TestChatFailedSendKeepsOptimisticUserMessage(t *testing.T) {
	backend := &fakeBackend{
		chatErr: &domain.TransportError{Operation: "chat", StatusCode: 500},
	}
	flow := NewChatFlow(backend, nil, nil)

	if _, err := flow.Send(context.Background(), "hello?"); err == nil {
		t.Fatalf("expected error")
	}

	messages := flow.Messages()
	if len(messages) != 1 {
		t.Fatalf("user message must survive a failed send, got %d messages", len(messages))
	}
	if messages[0].Role != domain.RoleUser || messages[0].Content != "hello?" {
		t.Fatalf("unexpected surviving message: %+v", messages[0])
	}
	if flow.ErrorMessage() != "An error occurred while sending the message. Please try again." {
		t.Fatalf("error message = %q", flow.ErrorMessage())
	}
	if flow.Phase() != PhaseFailed {
		t.Fatalf("phase = %s", flow.Phase())
	}
}

func TestChatLanguageFollowsUploadFlow(t *testing.T) {
	backend := &fakeBackend{
		uploadResp: domain.UploadResponse{Classification: "Cease", Filename: "fr.pdf", Language: "French"},
		chatReply:  "ok",
	}
	upload := NewUploadFlow(backend, nil)
	chat := NewChatFlow(backend, upload, nil)

	upload.SelectFile(domain.FilePayload{Name: "fr.pdf"})
	if _, err := upload.Submit(context.Background()); err != nil {
		t.Fatalf("upload Submit() error = %v", err)
	}
	if _, err := chat.Send(context.Background(), "what now?"); err != nil {
		t.Fatalf("chat Send() error = %v", err)
	}
	if backend.lastChatLanguage != "French" {
		t.Fatalf("chat language = %q, want French", backend.lastChatLanguage)
	}
}
