package usecase

import (
	"context"

	"github.com/ceasedesk/console/internal/core/domain"
)

// fakeBackend records calls and plays back canned responses for flow tests.
type fakeBackend struct {
	uploadResp     domain.UploadResponse
	uploadErr      error
	uploadCalls    int
	lastUploadFile domain.FilePayload

	bulkResp      []domain.BulkFileResult
	bulkErr       error
	bulkCalls     int
	lastBulkFiles []domain.FilePayload

	chatReply        string
	chatErr          error
	chatCalls        int
	lastChatMessages []domain.ChatMessage
	lastChatLanguage string

	snapshot     domain.DashboardSnapshot
	metricsErr   error
	metricsCalls int
}

func (f *fakeBackend) Upload(_ context.Context, file domain.FilePayload) (domain.UploadResponse, error) {
	f.uploadCalls++
	f.lastUploadFile = file
	return f.uploadResp, f.uploadErr
}

func (f *fakeBackend) BulkUpload(_ context.Context, files []domain.FilePayload) ([]domain.BulkFileResult, error) {
	f.bulkCalls++
	f.lastBulkFiles = files
	return f.bulkResp, f.bulkErr
}

func (f *fakeBackend) Chat(_ context.Context, messages []domain.ChatMessage, language string) (string, error) {
	f.chatCalls++
	f.lastChatMessages = messages
	f.lastChatLanguage = language
	return f.chatReply, f.chatErr
}

func (f *fakeBackend) DashboardMetrics(_ context.Context) (domain.DashboardSnapshot, error) {
	f.metricsCalls++
	return f.snapshot, f.metricsErr
}
