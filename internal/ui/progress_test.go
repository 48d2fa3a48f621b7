package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	"glslfront/internal/pipeline"
)

func TestProgressModelEvents(t *testing.T) {
	files := []string{"a.vert", "b.frag", "c.comp"}
	m := NewProgressModel("translating", files, nil).(*progressModel)

	steps := []pipeline.Event{
		{File: "a.vert", Stage: pipeline.StageLex, Status: pipeline.StatusWorking},
		{File: "a.vert", Stage: pipeline.StageTranslate, Status: pipeline.StatusDone},
		{File: "b.frag", Stage: pipeline.StageTranslate, Status: pipeline.StatusError, Err: errors.New("bad")},
		{File: "b.frag", Stage: pipeline.StageTranslate, Status: pipeline.StatusWorking},
		{File: "unknown.vert", Stage: pipeline.StageLex, Status: pipeline.StatusWorking},
		{File: "c.comp", Stage: pipeline.StageLex, Status: pipeline.StatusWorking},
	}
	for _, ev := range steps {
		m.Update(eventMsg(ev))
	}

	if m.items[0].status != "done" || m.items[1].status != "error" || m.items[2].status != "lexing" {
		t.Fatalf("items = %+v", m.items)
	}
	if got, want := m.percent(), 2.4/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("percent = %v, want %v", got, want)
	}
	view := m.View()
	for _, want := range []string{"translating (2/3), 1 failed", "a.vert", "lexing"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.Update(doneMsg{})
	if !strings.Contains(m.View(), "done: translating") {
		t.Errorf("final view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"shader.vert", 20, "shader.vert"},
		{"very/long/path/shader.vert", 10, "very..."},
		{"abcdef", 3, "abc"},
		{"界界界界", 8, "界界界界"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
