package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mentor/internal/feedback"
)

func sample() feedback.Directive {
	return feedback.Directive{
		Category: feedback.CatSemantic,
		Label:    "Initialization Problem",
		Message:  "The variable \"x\" was used on line 4,\nbut it was not given a value.",
		Line:     4,
		Outcome:  feedback.OutcomeAnalyzer,
	}
}

func TestGolden(t *testing.T) {
	got := Golden(sample())
	want := `analyzer semantic line=4 Initialization Problem: The variable "x" was used on line 4, but it was not given a value.`
	if got != want {
		t.Fatalf("golden mismatch:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestGoldenWithoutLineOrLabel(t *testing.T) {
	d := feedback.Directive{Category: feedback.CatComplete, Outcome: feedback.OutcomeCompleted}
	if got, want := Golden(d), "completed complete line=- -"; got != want {
		t.Fatalf("golden = %q, want %q", got, want)
	}
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sample(), PrettyOpts{ShowOutcome: true, ShowEditorLine: true})
	out := buf.String()

	for _, want := range []string{
		"Initialization Problem",
		"semantic, line 4",
		"outcome analyzer",
		"editor line: 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("pretty output misses %q:\n%s", want, out)
		}
	}
}

func TestPrettyPrintsNothingForBareCompleted(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, feedback.Directive{Category: feedback.CatComplete, Outcome: feedback.OutcomeCompleted}, PrettyOpts{})
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample(), JSONOpts{IncludeEditorLine: true}); err != nil {
		t.Fatal(err)
	}

	var got DirectiveJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Category != "semantic" || got.Outcome != "analyzer" || got.Line != 4 {
		t.Fatalf("json = %+v", got)
	}
	if got.EditorLine == nil || *got.EditorLine != 3 {
		t.Fatalf("editor_line = %v, want 3", got.EditorLine)
	}
}

func TestJSONOmitsEditorLineWhenAbsent(t *testing.T) {
	d := sample()
	d.Line = 0
	var buf bytes.Buffer
	if err := JSON(&buf, d, JSONOpts{IncludeEditorLine: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "editor_line") {
		t.Fatalf("editor_line must be omitted: %s", buf.String())
	}
}
