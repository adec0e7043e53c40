package valueobject

// Severity classifies a Notice for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is the user-facing outcome message returned next to an operation's
// result. Callers decide how to surface it.
type Notice struct {
	OK       bool     `json:"ok"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Success builds an OK notice.
func Success(title, message string) Notice {
	return Notice{OK: true, Title: title, Message: message, Severity: SeveritySuccess}
}

// Failure builds a non-OK notice with error severity.
func Failure(title, message string) Notice {
	return Notice{OK: false, Title: title, Message: message, Severity: SeverityError}
}
