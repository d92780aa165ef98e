package bootstrap

import (
	"log/slog"

	"github.com/ceasedesk/console/internal/adapters/console"
	"github.com/ceasedesk/console/internal/config"
	"github.com/ceasedesk/console/internal/core/usecase"
	"github.com/ceasedesk/console/internal/infrastructure/classifier"
	"github.com/ceasedesk/console/internal/infrastructure/export/xlsx"
	"github.com/ceasedesk/console/internal/infrastructure/resilience"
	"github.com/ceasedesk/console/internal/observability/logging"
	"github.com/ceasedesk/console/internal/observability/metrics"
)

// App wires the backend client, the flows and the review board from one
// configuration.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.ClientMetrics

	Upload *usecase.UploadFlow
	Bulk   *usecase.BulkUploadFlow
	Chat   *usecase.ChatFlow
	Board  *usecase.ReviewBoard

	Exporter *xlsx.Exporter
}

func New(cfg config.Config) *App {
	logger := logging.New("console", cfg.LogLevel, cfg.LogFormat)
	clientMetrics := metrics.NewClientMetrics("console")

	exec := resilience.NewExecutor(resilience.Config{
		RequestsPerSecond: cfg.RateLimitPerSecond,
		Burst:             cfg.RateLimitBurst,

		BreakerEnabled:          cfg.BreakerEnabled,
		BreakerMinRequests:      cfg.BreakerMinRequests,
		BreakerFailureRatio:     cfg.BreakerFailureRatio,
		BreakerOpenTimeout:      cfg.BreakerOpenTimeout(),
		BreakerHalfOpenMaxCalls: cfg.BreakerHalfOpenMaxCalls,
	})

	backend := classifier.New(cfg.BackendURL,
		classifier.WithTimeout(cfg.RequestTimeout()),
		classifier.WithExecutor(exec),
		classifier.WithMetrics(clientMetrics),
	)

	upload := usecase.NewUploadFlow(backend, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: clientMetrics,

		Upload: upload,
		Bulk:   usecase.NewBulkUploadFlow(backend, logger),
		Chat:   usecase.NewChatFlow(backend, upload, logger),
		Board:  usecase.NewReviewBoard(backend, logger),

		Exporter: xlsx.New(),
	}
}

// ConsoleDeps adapts the wired application for the interactive surface.
func (a *App) ConsoleDeps() console.Deps {
	return console.Deps{
		Upload:   a.Upload,
		Bulk:     a.Bulk,
		Chat:     a.Chat,
		Board:    a.Board,
		Exporter: a.Exporter,
	}
}
