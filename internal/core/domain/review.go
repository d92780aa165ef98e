package domain

// TableKey identifies one of the four review tables.
type TableKey string

const (
	TableAuditLogs          TableKey = "audit_logs"
	TableApprovedDocuments  TableKey = "approved_documents"
	TableClassificationLogs TableKey = "classification_logs"
	TableFurtherEvaluation  TableKey = "further_evaluation"
)

// TableKeys lists the review tables in display order.
func TableKeys() []TableKey {
	return []TableKey{
		TableAuditLogs,
		TableApprovedDocuments,
		TableClassificationLogs,
		TableFurtherEvaluation,
	}
}

// ReviewRow is a schema-less row: column name to scalar value. The four
// tables carry independent column sets discovered at runtime.
type ReviewRow map[string]any

// TableFilter maps a column to the set of values a user keeps visible.
// An empty or absent set leaves that column unconstrained.
type TableFilter map[string][]string

type DashboardMetrics struct {
	TotalAuditLogs          int `json:"total_audit_logs"`
	TotalApprovedDocuments  int `json:"total_approved_documents"`
	TotalFurtherEvaluation  int `json:"total_further_evaluation"`
	TotalClassificationLogs int `json:"total_classification_logs"`
}

type RecentData struct {
	AuditLogs          []ReviewRow `json:"audit_logs"`
	ApprovedDocuments  []ReviewRow `json:"approved_documents"`
	ClassificationLogs []ReviewRow `json:"classification_logs"`
	FurtherEvaluation  []ReviewRow `json:"further_evaluation"`
}

// Table returns the row set for one table key.
func (d RecentData) Table(key TableKey) []ReviewRow {
	switch key {
	case TableAuditLogs:
		return d.AuditLogs
	case TableApprovedDocuments:
		return d.ApprovedDocuments
	case TableClassificationLogs:
		return d.ClassificationLogs
	case TableFurtherEvaluation:
		return d.FurtherEvaluation
	default:
		return nil
	}
}

// DashboardSnapshot is the wire shape of GET /dashboard/metrics/.
type DashboardSnapshot struct {
	Metrics    DashboardMetrics `json:"metrics"`
	RecentData RecentData       `json:"recent_data"`
}
