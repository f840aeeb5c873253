package strutil

import (
	"reflect"
	"testing"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "   \t\n  ", ""},
		{"already collapsed", "a b c", "a b c"},
		{"interior runs", "a   b\t\tc", "a b c"},
		{"leading and trailing", "  hello   world  ", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collapse(tt.input); got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no whitespace", "abc", "abc"},
		{"mixed", " a\tb \n c ", "abc"},
		{"unicode space", "a" + string(rune(0x00a0)) + "b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		delims string
		want   []string
	}{
		{"single delim", "a,b,c", ",", []string{"a", "b", "c"}},
		{"delim set", "a,b;c", ",;", []string{"a", "b", "c"}},
		{"empty tokens dropped", ",,a,,b,", ",", []string{"a", "b"}},
		{"no delims present", "abc", ",", []string{"abc"}},
		{"empty input", "", ",", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.delims)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %v, want %v", tt.input, tt.delims, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		args    []any
		want    string
	}{
		{"no placeholders", "plain", nil, "plain"},
		{"single", "value is {0}", []any{42}, "value is 42"},
		{"repeated", "{0} and {0}", []any{"x"}, "x and x"},
		{"multiple", "{1}-{0}", []any{"a", "b"}, "b-a"},
		{"missing index unchanged", "{0} {3}", []any{"a"}, "a {3}"},
		{"bare brace unchanged", "a { b", nil, "a { b"},
		{"non-numeric unchanged", "{x}", []any{"a"}, "{x}"},
		{"mixed types", "{0}={1}", []any{"n", 1.5}, "n=1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.pattern, tt.args...); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.pattern, tt.args, got, tt.want)
			}
		})
	}
}
