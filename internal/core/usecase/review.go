package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/core/ports"
)

const msgMetricsFailed = "Failed to fetch dashboard metrics."

// ReviewBoard holds the four review tables, their headline metrics and one
// independent filter state per table, all populated by a single combined
// fetch. Mutating one table's filter never touches a sibling table.
type ReviewBoard struct {
	backend ports.ClassifierService
	logger  *slog.Logger

	mu      sync.Mutex
	phase   Phase
	errMsg  string
	metrics domain.DashboardMetrics
	tables  map[domain.TableKey][]domain.ReviewRow
	filters map[domain.TableKey]domain.TableFilter
}

func NewReviewBoard(backend ports.ClassifierService, logger *slog.Logger) *ReviewBoard {
	if logger == nil {
		logger = slog.Default()
	}
	board := &ReviewBoard{backend: backend, logger: logger}
	board.reset()
	return board
}

// reset leaves every table empty with a fresh, independent filter state.
// Callers hold the mutex.
func (b *ReviewBoard) reset() {
	b.metrics = domain.DashboardMetrics{}
	b.tables = make(map[domain.TableKey][]domain.ReviewRow, 4)
	b.filters = make(map[domain.TableKey]domain.TableFilter, 4)
	for _, key := range domain.TableKeys() {
		b.tables[key] = nil
		b.filters[key] = domain.TableFilter{}
	}
}

// Load performs the combined metrics+recent-data fetch. On failure every
// table stays empty and a single error message is surfaced; nothing panics.
func (b *ReviewBoard) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.phase == PhaseLoading {
		b.mu.Unlock()
		return domain.WrapError(domain.ErrValidation, "review load", fmt.Errorf("fetch already in flight"))
	}
	b.phase = PhaseLoading
	b.errMsg = ""
	b.mu.Unlock()

	snapshot, err := b.backend.DashboardMetrics(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.reset()
		b.phase = PhaseFailed
		b.errMsg = domain.ErrorDetail(err, msgMetricsFailed)
		b.logger.Error("review_fetch_failed", "error", err)
		return err
	}

	b.metrics = snapshot.Metrics
	for _, key := range domain.TableKeys() {
		b.tables[key] = append([]domain.ReviewRow(nil), snapshot.RecentData.Table(key)...)
		b.filters[key] = domain.TableFilter{}
	}
	b.phase = PhaseSuccess
	b.logger.Info("review_fetched",
		"audit_logs", len(b.tables[domain.TableAuditLogs]),
		"approved_documents", len(b.tables[domain.TableApprovedDocuments]),
		"classification_logs", len(b.tables[domain.TableClassificationLogs]),
		"further_evaluation", len(b.tables[domain.TableFurtherEvaluation]),
	)
	return nil
}

// SetFilter replaces exactly one column's selection in exactly one table's
// filter state. An empty value list lifts that column's constraint.
func (b *ReviewBoard) SetFilter(table domain.TableKey, column string, values []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	filter := b.filters[table]
	if filter == nil {
		filter = domain.TableFilter{}
		b.filters[table] = filter
	}
	filter[column] = append([]string(nil), values...)
}

// ClearFilters lifts every constraint on one table.
func (b *ReviewBoard) ClearFilters(table domain.TableKey) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters[table] = domain.TableFilter{}
}

// Filter returns a copy of one table's filter state.
func (b *ReviewBoard) Filter(table domain.TableKey) domain.TableFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := domain.TableFilter{}
	for column, values := range b.filters[table] {
		out[column] = append([]string(nil), values...)
	}
	return out
}

// Rows returns the unfiltered row set of one table.
func (b *ReviewBoard) Rows(table domain.TableKey) []domain.ReviewRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.ReviewRow(nil), b.tables[table]...)
}

// Visible returns one table's rows after applying its own filter state.
func (b *ReviewBoard) Visible(table domain.TableKey) []domain.ReviewRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return VisibleRows(b.tables[table], b.filters[table])
}

// FilterOptions returns the selectable value domain for one column, always
// recomputed from the current unfiltered rows.
func (b *ReviewBoard) FilterOptions(table domain.TableKey, column string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return DistinctValues(b.tables[table], column)
}

// Columns reports the column set of one table, discovered from its first
// row and sorted for stable rendering. Tables share no schema.
func (b *ReviewBoard) Columns(table domain.TableKey) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows := b.tables[table]
	if len(rows) == 0 {
		return nil
	}
	columns := make([]string, 0, len(rows[0]))
	for column := range rows[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

func (b *ReviewBoard) Metrics() domain.DashboardMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.metrics
}

func (b *ReviewBoard) Phase() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// ErrorMessage is the single user-visible error banner for the board.
func (b *ReviewBoard) ErrorMessage() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}
