package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ceasedesk/console/internal/core/domain"
)

func renderRecord(w io.Writer, record domain.ClassificationRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "filename\t%s\n", record.Filename)
	fmt.Fprintf(tw, "classification\t%s\n", record.Classification)
	if record.Action != "" {
		fmt.Fprintf(tw, "action\t%s\n", record.Action)
	}
	fmt.Fprintf(tw, "language\t%s\n", record.Language)
	fmt.Fprintf(tw, "audit status\t%s\n", record.AuditStatus)
	fmt.Fprintf(tw, "agent status\t%s\n", record.AgentStatus)
	tw.Flush()
}

func renderBulk(w io.Writer, entries []domain.BulkResultEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no results")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "filename\tclassification\taction\terror")
	for _, entry := range entries {
		if entry.Err != "" {
			fmt.Fprintf(tw, "%s\t\t\t%s\n", entry.Filename, entry.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", entry.Filename, entry.Classification, entry.Action)
	}
	tw.Flush()
}

func renderMessages(w io.Writer, messages []domain.ChatMessage) {
	if len(messages) == 0 {
		fmt.Fprintln(w, "no messages yet")
		return
	}
	for _, message := range messages {
		fmt.Fprintf(w, "%s: %s\n", message.Role, message.Content)
	}
}

func renderMetrics(w io.Writer, metrics domain.DashboardMetrics) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "audit logs\t%d\n", metrics.TotalAuditLogs)
	fmt.Fprintf(tw, "approved documents\t%d\n", metrics.TotalApprovedDocuments)
	fmt.Fprintf(tw, "classification logs\t%d\n", metrics.TotalClassificationLogs)
	fmt.Fprintf(tw, "further evaluation\t%d\n", metrics.TotalFurtherEvaluation)
	tw.Flush()
}

func renderTable(w io.Writer, columns []string, rows []domain.ReviewRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no rows")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, column := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, column)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, column := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			if value, ok := row[column]; ok {
				fmt.Fprintf(tw, "%v", value)
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
