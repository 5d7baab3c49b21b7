package po

import "fmt"

// Severity ranks diagnostic messages.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	// SeverityFatal means the operation produced no usable result.
	SeverityFatal
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Message is one diagnostic line produced while parsing.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// String formats the message with its severity.
func (m Message) String() string {
	return fmt.Sprintf("[%s] %s", m.Severity, m.Text)
}

type messageLog []Message

func (l *messageLog) infof(format string, args ...any) {
	*l = append(*l, Message{Severity: SeverityInfo, Text: fmt.Sprintf(format, args...)})
}

func (l *messageLog) warnf(format string, args ...any) {
	*l = append(*l, Message{Severity: SeverityWarning, Text: fmt.Sprintf(format, args...)})
}

func (l *messageLog) fatalf(format string, args ...any) {
	*l = append(*l, Message{Severity: SeverityFatal, Text: fmt.Sprintf(format, args...)})
}
