package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatLanguageUnknown is sent as conversation context while no document has
// been classified yet.
const ChatLanguageUnknown = "unknown"

// ChatMessage is one turn of the assistant conversation. The transcript is
// ordered and append-only; the whole transcript is sent on every turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
