package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/core/ports"
)

const msgChatFailed = "An error occurred while sending the message. Please try again."

// LanguageSource yields the detected language of the most recent single
// classification. The chat flow only ever reads it; the dependency must stay
// one-directional.
type LanguageSource interface {
	DetectedLanguage() string
}

// ChatFlow owns the assistant conversation: an append-only transcript sent
// whole on every turn together with the detected document language.
type ChatFlow struct {
	backend  ports.ClassifierService
	language LanguageSource
	logger   *slog.Logger

	mu       sync.Mutex
	messages []domain.ChatMessage
	phase    Phase
	errMsg   string
}

func NewChatFlow(backend ports.ClassifierService, language LanguageSource, logger *slog.Logger) *ChatFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatFlow{backend: backend, language: language, logger: logger}
}

// Send appends the user message optimistically and requests the assistant
// reply. Blank input is a no-op. On failure the user message stays in the
// transcript (no rollback) and the error banner is set.
func (f *ChatFlow) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	f.mu.Lock()
	if f.phase == PhaseLoading {
		f.mu.Unlock()
		return "", domain.WrapError(domain.ErrValidation, "chat", fmt.Errorf("send already in flight"))
	}
	f.messages = append(f.messages, domain.ChatMessage{Role: domain.RoleUser, Content: text})
	transcript := append([]domain.ChatMessage(nil), f.messages...)
	f.phase = PhaseLoading
	f.errMsg = ""
	f.mu.Unlock()

	language := domain.ChatLanguageUnknown
	if f.language != nil {
		language = f.language.DetectedLanguage()
	}

	reply, err := f.backend.Chat(ctx, transcript, language)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.errMsg = domain.ErrorDetail(err, msgChatFailed)
		f.logger.Error("chat_send_failed", "turns", len(transcript), "error", err)
		return "", err
	}

	f.messages = append(f.messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})
	f.phase = PhaseSuccess
	f.logger.Info("chat_reply", "turns", len(f.messages), "language", language)
	return reply, nil
}

// Messages returns a copy of the transcript in display order.
func (f *ChatFlow) Messages() []domain.ChatMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ChatMessage(nil), f.messages...)
}

func (f *ChatFlow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// ErrorMessage is the single user-visible error banner for this flow.
func (f *ChatFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
