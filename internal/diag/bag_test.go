package diag

import (
	"testing"

	"glslfront/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	r.Report(LexBadNumber, SevWarning, source.Span{Start: 1, End: 2}, "w", nil)
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("warning only: HasErrors=%v HasWarnings=%v", b.HasErrors(), b.HasWarnings())
	}
	r.Report(LexUnknownChar, SevError, source.Span{Start: 0, End: 1}, "e", nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 5, End: 6}, "dropped", nil)
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() {
		t.Fatal("expected errors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SemaError, source.Span{Start: 9, End: 10}, "late"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "early"))
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "early again"))
	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Errorf("order = %q, %q", items[0].Message, items[1].Message)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexBadNumber:            "LEX1004",
		SynUnexpectedEOF:        "SYN2002",
		SemaUnknownIdentifier:   "SEM3005",
		IOLoadFileError:         "IO4001",
		FutUnimplementedFeature: "FUT7002",
		Code(9999):              "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if Code(1234).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", Code(1234).Title())
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev   Severity
		name  string
		fatal bool
	}{
		{SevInfo, "INFO", false},
		{SevWarning, "WARNING", false},
		{SevError, "ERROR", true},
		{Severity(7), "UNKNOWN", true},
	}
	for _, tt := range tests {
		if tt.sev.String() != tt.name || tt.sev.Fatal() != tt.fatal {
			t.Errorf("%d: %s fatal=%v", tt.sev, tt.sev, tt.sev.Fatal())
		}
	}
}
