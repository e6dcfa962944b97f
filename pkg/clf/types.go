// Package clf tokenizes Apache Common and Combined Log Format records.
package clf

import "fmt"

// State identifies the field the scanner is currently accumulating.
// States progress in the fixed record order and never regress within
// a line; StateAddress may be revisited for comma-separated addresses.
type State int

const (
	StateAddress State = iota
	StateIdentity
	StateUser
	StateTime
	StateMethod
	StatePath
	StateProtocol
	StateCode
	StateContent
	StateReferer
	StateAgent
)

var stateNames = map[State]string{
	StateAddress:  "ADDRESS",
	StateIdentity: "IDENTITY",
	StateUser:     "USER",
	StateTime:     "TIME",
	StateMethod:   "METHOD",
	StatePath:     "PATH",
	StateProtocol: "PROTOCOL",
	StateCode:     "CODE",
	StateContent:  "CONTENT",
	StateReferer:  "REFERER",
	StateAgent:    "AGENT",
}

// String returns the field name for the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FieldError reports a token that failed its field grammar. It carries
// the state the scanner was in and a fixed human-readable reason, and
// aborts processing of the current line only.
type FieldError struct {
	// State is the field being validated when the token was rejected.
	State State

	// Reason is the diagnostic text shown to the user.
	Reason string
}

// Error returns the reason text. The reason strings already name the
// offending field, so no prefix is added.
func (e *FieldError) Error() string {
	return e.Reason
}
