package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-t", "token"},
			allowed: []string{"-c", "--config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "long flag with equals",
			args:    []string{"--config=alt.json", "-t", "token"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "check", "id=1&hash=2"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end kept",
			args:    []string{"-o"},
			allowed: []string{"-o"},
			want:    []string{"-o"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-t", "x"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "value containing equals",
			args:    []string{"-t=abc:def=", "-o", "60"},
			allowed: []string{"-t", "-o"},
			want:    []string{"-t=abc:def=", "-o", "60"},
		},
		{
			name:    "stops at double dash",
			args:    []string{"-o", "60", "--", "-t", "x"},
			allowed: []string{"-o", "-t"},
			want:    []string{"-o", "60"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestPositional(t *testing.T) {
	valueFlags := []string{"-c", "-t", "-o"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", nil, []string{}},
		{"only flags", []string{"-t", "tok", "-o", "60"}, []string{}},
		{"command after flags", []string{"-t", "tok", "check", "id=1&auth_date=2"}, []string{"check", "id=1&auth_date=2"}},
		{"equals form", []string{"-t=tok", "sign", "id=1"}, []string{"sign", "id=1"}},
		{"unknown boolean flag", []string{"-v", "embed", "redirect", "https://x"}, []string{"embed", "redirect", "https://x"}},
		{"double dash", []string{"-o", "5", "--", "-odd"}, []string{"-odd"}},
		{"single dash is positional", []string{"check", "-"}, []string{"check", "-"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Positional(tc.args, valueFlags))
		})
	}
}

func TestJSONConfigFlag(t *testing.T) {
	assert.Equal(t, "a.json", JSONConfigFlag([]string{"-t", "x", "-c", "a.json"}))
	assert.Equal(t, "b.json", JSONConfigFlag([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", JSONConfigFlag([]string{"--config=c.json", "check"}))
	assert.Equal(t, "", JSONConfigFlag([]string{"check", "id=1"}))
}
