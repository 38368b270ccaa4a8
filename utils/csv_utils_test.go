package utils

import (
	"bytes"
	"testing"
)

func TestQuoteCSVField(t *testing.T) {
	if got := QuoteCSVField("plain"); got != `"plain"` {
		t.Fatalf("expected quoted field, got %s", got)
	}
	if got := QuoteCSVField(`say "hi"`); got != `"say ""hi"""` {
		t.Fatalf("internal quotes must be doubled, got %s", got)
	}
	if got := QuoteCSVField(""); got != `""` {
		t.Fatalf("empty fields are still quoted, got %s", got)
	}
}

func TestBuildCSV(t *testing.T) {
	out := BuildCSV([]string{"a", "b"}, [][]string{{"1", "2"}})

	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected UTF-8 BOM prefix")
	}
	want := "\"a\",\"b\"\r\n\"1\",\"2\"\r\n"
	if string(out[3:]) != want {
		t.Fatalf("unexpected CSV body: %q", string(out[3:]))
	}
}

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	if p.TotalPages != 3 || p.CurrentPage != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	p = CreatePagination(25, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 10 {
		t.Fatalf("defaults not applied: %+v", p)
	}
}
