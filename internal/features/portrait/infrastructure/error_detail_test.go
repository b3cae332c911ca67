package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single error", `{"errors":["bad prompt"]}`, "['bad prompt']"},
		{"several errors", `{"errors":["a","b"]}`, "['a', 'b']"},
		{"empty list", `{"errors":[]}`, "[]"},
		{"string field", `{"errors":"oops"}`, "oops"},
		{"string field with quote", `{"errors":"it's bad"}`, "it's bad"},
		{"quote inside", `{"errors":["it's bad"]}`, `["it's bad"]`},
		{"both quotes", `{"errors":["it's \"bad\""]}`, `['it\'s "bad"']`},
		{"mixed values", `{"errors":[1,2.5,true,null,{"b":1,"a":"x"}]}`, "[1, 2.5, True, None, {'b': 1, 'a': 'x'}]"},
		{"key order kept", `{"errors":{"z":[],"a":{"y":1,"b":2}}}`, "{'z': [], 'a': {'y': 1, 'b': 2}}"},
		{"duplicate key keeps first position", `{"errors":{"a":1,"b":2,"a":3}}`, "{'a': 3, 'b': 2}"},
		{"whole float", `{"errors":[1.0, -2.00]}`, "[1.0, -2.0]"},
		{"exponent floats", `{"errors":[1e16, 1.5e-5, 2E3, 0.0001]}`, "[1e+16, 1.5e-05, 2000.0, 0.0001]"},
		{"large integer", `{"errors":[12345678901234567890]}`, "[12345678901234567890]"},
		{"scalar field", `{"errors":42}`, "42"},
		{"null field", `{"errors":null}`, "None"},
		{"no errors field", `{"name":"x"}`, `['{"name":"x"}']`},
		{"not json", "Internal Server Error", "['Internal Server Error']"},
		{"newline in raw body", "line1\nline2", `['line1\nline2']`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorDetail([]byte(tt.body)))
		})
	}
}
