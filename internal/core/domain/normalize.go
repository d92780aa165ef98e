package domain

import "strings"

// quoteStripper removes stray single/double quotes the backend sometimes
// leaves around the classification value when it double-encodes it.
var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Normalize turns a raw upload response into the canonical record. It never
// fails: an unknown classification value passes through with no action text
// and downstream consumers decide how to render it.
func Normalize(raw UploadResponse) ClassificationRecord {
	classification := quoteStripper.Replace(raw.Classification)
	return ClassificationRecord{
		Filename:       raw.Filename,
		Classification: classification,
		Action:         ActionFor(classification),
		Language:       stringOrDefault(raw.Language, LanguageUnknown),
		AuditStatus:    statusOrDefault(raw.AuditStatus, AuditStatusUnavailable),
		AgentStatus:    statusOrDefault(raw.AgentStatus, AgentStatusUnavailable),
		ExtractedText:  raw.ExtractedText,
	}
}

// NormalizeBulk normalizes one entry of a bulk result list. An entry carrying
// a server-side error keeps only the filename and the error text.
func NormalizeBulk(raw BulkFileResult) BulkResultEntry {
	if strings.TrimSpace(raw.Error) != "" {
		return BulkResultEntry{Filename: raw.Filename, Err: raw.Error}
	}
	record := Normalize(raw.UploadResponse)
	return BulkResultEntry{
		Filename:       record.Filename,
		Classification: record.Classification,
		Action:         record.Action,
		Language:       record.Language,
		AuditStatus:    record.AuditStatus,
		AgentStatus:    record.AgentStatus,
	}
}

// ActionFor maps a classification verdict to the action text shown to the
// user. The backend never supplies this value and is never trusted for it.
func ActionFor(classification string) string {
	switch Verdict(classification) {
	case VerdictCease:
		return "Details have been written to the datastore."
	case VerdictUncertain:
		return "Requires manual review. Please review the document."
	case VerdictIrrelevant:
		return "Archived successfully."
	default:
		return ""
	}
}

func stringOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func statusOrDefault(status *StatusObject, fallback string) string {
	if status == nil || strings.TrimSpace(status.Status) == "" {
		return fallback
	}
	return status.Status
}
