package clf

// Validator applies the per-field grammars and decides state
// transitions. It is constructed once at startup and is immutable for
// the process lifetime; when skip is set, every content check is
// bypassed but the state transitions are unchanged.
type Validator struct {
	skip bool
}

// NewValidator creates a Validator. When skipValidation is true, field
// content is accepted unconditionally and only tokenization boundaries
// apply.
func NewValidator(skipValidation bool) *Validator {
	return &Validator{skip: skipValidation}
}

// Check validates a completed token against the grammar for the given
// state. On success it returns the next state in the record order; on
// rejection it returns the unchanged state and a *FieldError.
func (v *Validator) Check(state State, token string) (State, error) {
	switch state {
	case StateAddress:
		if v.skip || isAddress(token) {
			return StateIdentity, nil
		}
		return state, &FieldError{State: state, Reason: "IP is invalid."}

	case StateIdentity:
		// RFC 1413 identities are almost never sent, so they are not
		// supported; the reason is distinct from a format error.
		if v.skip || token == "-" {
			return StateUser, nil
		}
		return state, &FieldError{State: state, Reason: "Client identity unsupported."}

	case StateUser:
		if v.skip || isUser(token) {
			return StateTime, nil
		}
		return state, &FieldError{State: state, Reason: "USER is invalid."}

	case StateTime:
		if v.skip || isNumeric(token) {
			return StateMethod, nil
		}
		return state, &FieldError{State: state, Reason: "TIME is not numeric."}

	case StateMethod:
		// Request methods can be anything in practice, so no grammar
		// is enforced.
		return StatePath, nil

	case StatePath:
		if v.skip || (len(token) > 0 && token[0] == '/') {
			return StateProtocol, nil
		}
		return state, &FieldError{State: state, Reason: "PATH does not begin with forward slash."}

	case StateProtocol:
		// Protocol strings vary by deployment; accepted as-is.
		return StateCode, nil

	case StateCode:
		if v.skip || isNumeric(token) {
			return StateContent, nil
		}
		return state, &FieldError{State: state, Reason: "CODE is not numeric."}

	case StateContent:
		if v.skip || isNumeric(token) {
			return StateReferer, nil
		}
		return state, &FieldError{State: state, Reason: "CONTENT is not numeric."}

	case StateReferer:
		// Arbitrary text.
		return StateAgent, nil

	case StateAgent:
		// Arbitrary text; AGENT is the terminal state.
		return StateAgent, nil
	}

	return state, &FieldError{State: state, Reason: "unknown parse state"}
}

// isAddress accepts the `-` placeholder or an IPv4-shaped token: only
// digits and dots, exactly three dots, at most 15 characters. Octets
// are not range-checked.
func isAddress(token string) bool {
	if token == "-" {
		return true
	}
	dots := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !isDigit(c) && c != '.' {
			return false
		}
		if c == '.' {
			dots++
		}
	}
	return dots == 3 && len(token) <= 15
}

// isNumeric accepts tokens composed only of digits and hyphens. The
// hyphen is allowed at any position, not only as a leading sign; this
// permissiveness is deliberate and matches the deployed behavior.
func isNumeric(token string) bool {
	for i := 0; i < len(token); i++ {
		if !isDigit(token[i]) && token[i] != '-' {
			return false
		}
	}
	return true
}

// isUser is very liberal with what is allowed for a username: the
// first character must be a letter, underscore, or a lone `-`, and the
// rest alphanumerics, `_`, `-`, `@`, or `.`.
func isUser(token string) bool {
	if len(token) == 0 {
		return false
	}
	c := token[0]
	if !isAlpha(c) && c != '_' && !(c == '-' && len(token) == 1) {
		return false
	}
	for i := 1; i < len(token); i++ {
		c := token[i]
		if !isAlpha(c) && !isDigit(c) && c != '_' && c != '-' && c != '@' && c != '.' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
