package output

import (
	"bytes"
	"errors"
	"testing"
)

func TestEmitterEmitRecord(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "full record",
			tokens: []string{"127.0.0.1", "-", "frank", "971160936", "GET", "/", "HTTP/1.0", "200", "2326"},
			want:   "127.0.0.1\t-\tfrank\t971160936\tGET\t/\tHTTP/1.0\t200\t2326\n",
		},
		{
			name:   "single token",
			tokens: []string{"only"},
			want:   "only\n",
		},
		{
			name:   "empty sequence writes nothing",
			tokens: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, diag bytes.Buffer
			e := New(&out, &diag)

			if err := e.EmitRecord(tt.tokens); err != nil {
				t.Fatalf("EmitRecord() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("EmitRecord() wrote %q, want %q", got, tt.want)
			}
			if diag.Len() != 0 {
				t.Errorf("EmitRecord() wrote to diagnostic stream: %q", diag.String())
			}
		})
	}
}

func TestEmitterEmitError(t *testing.T) {
	var out, diag bytes.Buffer
	e := New(&out, &diag)

	raw := `10.0.0.1 jdoe frank [04/Apr/2012:10:37:29 -0500] "GET / HTTP/1.1" 200 17`
	e.EmitError(errors.New("Client identity unsupported."), raw)

	want := `Error "Client identity unsupported." on line: ` + raw + "\n"
	if got := diag.String(); got != want {
		t.Errorf("EmitError() wrote %q, want %q", got, want)
	}
	if out.Len() != 0 {
		t.Errorf("EmitError() wrote to record stream: %q", out.String())
	}
}
