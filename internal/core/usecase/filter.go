package usecase

import (
	"fmt"
	"strconv"

	"github.com/ceasedesk/console/internal/core/domain"
)

// VisibleRows applies faceted-filter semantics to one table: constrained
// columns combine with AND, the selected values of a single column combine
// with OR. The result is an order-preserving subsequence of rows; the input
// is never mutated and repeated application is idempotent.
func VisibleRows(rows []domain.ReviewRow, filter domain.TableFilter) []domain.ReviewRow {
	sets := make(map[string]map[string]struct{}, len(filter))
	for column, values := range filter {
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, value := range values {
			set[value] = struct{}{}
		}
		sets[column] = set
	}

	out := make([]domain.ReviewRow, 0, len(rows))
	for _, row := range rows {
		if rowVisible(row, sets) {
			out = append(out, row)
		}
	}
	return out
}

func rowVisible(row domain.ReviewRow, sets map[string]map[string]struct{}) bool {
	for column, set := range sets {
		if _, ok := set[cellKey(row[column])]; !ok {
			return false
		}
	}
	return true
}

// DistinctValues derives the filter-menu domain for one column: every value
// appearing in that column across the unfiltered row set, deduplicated, in
// first-appearance order. It must always run against the current unfiltered
// rows so newly arrived values stay selectable.
func DistinctValues(rows []domain.ReviewRow, column string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range rows {
		value, ok := row[column]
		if !ok {
			continue
		}
		key := cellKey(value)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// cellKey renders a scalar cell in its canonical comparable form. JSON
// numbers decode as float64; integral values must match their integer
// spelling so user-entered filter values compare correctly.
func cellKey(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}
