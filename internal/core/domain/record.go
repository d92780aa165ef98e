package domain

// Verdict is the classification outcome for one document.
type Verdict string

const (
	VerdictCease      Verdict = "Cease"
	VerdictUncertain  Verdict = "Uncertain"
	VerdictIrrelevant Verdict = "Irrelevant"
)

// Sentinel texts used when the backend omits optional result fields.
const (
	LanguageUnknown        = "Unknown"
	AuditStatusUnavailable = "Audit status not available"
	AgentStatusUnavailable = "Agent status not available"
)

// FilePayload is a selected document: binary content plus its filename.
type FilePayload struct {
	Name    string
	Content []byte
}

type StatusObject struct {
	Status string `json:"status"`
}

// UploadResponse is the raw wire shape of POST /upload/.
type UploadResponse struct {
	Classification string        `json:"classification"`
	Filename       string        `json:"filename"`
	AuditStatus    *StatusObject `json:"audit_status,omitempty"`
	AgentStatus    *StatusObject `json:"agent_status,omitempty"`
	Language       string        `json:"language,omitempty"`
	ExtractedText  string        `json:"extracted_text,omitempty"`
}

// BulkFileResult is the raw per-file wire shape inside the POST /bulk_upload/
// result list. Error is set when that one file failed server-side; the
// remaining fields are meaningless in that case.
type BulkFileResult struct {
	UploadResponse
	Error string `json:"error,omitempty"`
}

// ClassificationRecord is the canonical, normalized result of classifying
// one document. Action is derived client-side and never read from the wire.
type ClassificationRecord struct {
	Filename       string
	Classification string
	Action         string
	Language       string
	AuditStatus    string
	AgentStatus    string
	ExtractedText  string
}

// BulkResultEntry mirrors ClassificationRecord for one file of a bulk batch.
// When Err is non-empty the other result fields must not be rendered.
type BulkResultEntry struct {
	Filename       string
	Err            string
	Classification string
	Action         string
	Language       string
	AuditStatus    string
	AgentStatus    string
}
