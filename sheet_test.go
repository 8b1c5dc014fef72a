package fundsheet

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "0050,元大台灣50,45.2", []string{"0050", "元大台灣50", "45.2"}},
		{"trims spaces", " 0050 , name ,  45.2", []string{"0050", "name", "45.2"}},
		{"quoted delimiter", `0050,"1,234.5",listed`, []string{"0050", "1,234.5", "listed"}},
		{"escaped quote", `0050,"say ""hi""",x`, []string{"0050", `say "hi"`, "x"}},
		{"empty fields", "a,,b,", []string{"a", "", "b", ""}},
		{"single field", "only", []string{"only"}},
		{"empty line", "", []string{""}},
		// Malformed quoting degrades to literal text, never errors.
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitRow(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRow(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

// Tokenizing, re-joining and re-tokenizing is stable for fields without
// embedded quotes.
func TestSplitRowRoundTrip(t *testing.T) {
	lines := []string{
		"0050,元大台灣50,45.2,listed",
		"00878,國泰永續高股息,4.2%,NT$21.5",
		"a,b,,d",
	}
	for _, line := range lines {
		first := SplitRow(line)
		second := SplitRow(strings.Join(first, string(Delimiter)))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip of %q: %#v != %#v", line, first, second)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("a,b\r\nc,d\n\n")
	want := []string{"a,b", "c,d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitLines = %#v, want %#v", got, want)
	}
}

func TestCleanCell(t *testing.T) {
	if got := cleanCell(` "0056" `); got != "0056" {
		t.Errorf("cleanCell = %q", got)
	}
}
