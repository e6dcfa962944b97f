package clf

// minRecordFields is the smallest complete record: address, identity,
// user, time, method, path, protocol, code, and content. Referer and
// agent are optional, and extra comma-separated addresses only add
// fields.
const minRecordFields = 9

// Scanner converts one raw log line into its ordered field tokens. It
// walks the line left to right through the field states, applying each
// state's delimiter and quoting rules, and validates every token as it
// completes. A Scanner is stateless between lines and safe to reuse.
type Scanner struct {
	validator *Validator
}

// NewScanner creates a Scanner that validates tokens with the given
// Validator.
func NewScanner(v *Validator) *Scanner {
	return &Scanner{validator: v}
}

// ScanLine tokenizes a single CLF or Combined line.
//
// The returned slice holds the fields in record order with the
// timestamp already converted to epoch seconds. A field that fails
// validation aborts the line: ScanLine returns nil and a *FieldError,
// and no tokens accumulated so far are exposed. A line that ends
// before the nine mandatory fields were collected (for example inside
// an unterminated quote or bracket, whose open buffer is dropped) is
// reported as an incomplete record. An empty or all-delimiter line
// yields an empty slice and no error.
func (s *Scanner) ScanLine(line string) ([]string, error) {
	tokens := make([]string, 0, 16)
	var token []byte
	state := StateAddress

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch state {
		case StateAddress, StateIdentity, StateUser, StateCode, StateContent:
			if c != ' ' && c != ',' {
				token = append(token, c)
			} else if c == ',' && state == StateAddress {
				// Another address follows; flush without validating
				// and stay in the address state.
				tokens = append(tokens, string(token))
				token = token[:0]
			} else if len(token) > 0 {
				next, err := s.validator.Check(state, string(token))
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, string(token))
				token = token[:0]
				state = next
			}
			// A trailing unquoted field has no delimiter after it;
			// flush it at end of line.
			if i == len(line)-1 && len(token) > 0 {
				tokens = append(tokens, string(token))
			}

		case StateTime:
			if c != '[' && c != ']' {
				token = append(token, c)
			} else if c == ']' {
				converted := LogtimeToUnix(string(token))
				next, err := s.validator.Check(state, converted)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, converted)
				token = token[:0]
				state = next
			}

		case StateMethod, StatePath, StateProtocol:
			if c != '"' || (i > 0 && line[i-1] == '\\') {
				if c != ' ' {
					token = append(token, c)
				} else if len(token) > 0 {
					next, err := s.validator.Check(state, string(token))
					if err != nil {
						return nil, err
					}
					tokens = append(tokens, string(token))
					token = token[:0]
					state = next
				}
			} else if len(token) > 0 {
				next, err := s.validator.Check(state, string(token))
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, string(token))
				token = token[:0]
				state = next
			}

		case StateReferer, StateAgent:
			// A space only separates fields while the buffer is still
			// empty; once content has started it is part of the field.
			if (c != '"' || (i > 0 && line[i-1] == '\\')) && (c != ' ' || len(token) > 0) {
				token = append(token, c)
			} else if len(token) > 0 {
				next, err := s.validator.Check(state, string(token))
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, string(token))
				token = token[:0]
				state = next
			}
		}
	}

	if len(tokens) > 0 && len(tokens) < minRecordFields {
		return nil, &FieldError{State: state, Reason: "Record is incomplete."}
	}

	return tokens, nil
}
