package export

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeContentStringAndStructuredAgree(t *testing.T) {
	raw := `{"instructions":"Responde todo","questions":[{"id":1,"type":"open","question":"¿Qué es un sustantivo?"},{"id":"2","type":"multiple_choice","question":"Elige","options":["a","b"],"correct_answer":"a"}]}`

	fromString := NormalizeContent(ActivityExam, raw)

	var structured map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &structured); err != nil {
		t.Fatalf("test payload invalid: %v", err)
	}
	fromMap := NormalizeContent(ActivityExam, structured)

	for name, c := range map[string]Content{"string": fromString, "map": fromMap} {
		if c.Degraded {
			t.Fatalf("%s payload degraded unexpectedly", name)
		}
		if c.Exam == nil {
			t.Fatalf("%s payload produced nil exam", name)
		}
		if len(c.Exam.Questions) != 2 {
			t.Fatalf("%s payload has %d questions, want 2", name, len(c.Exam.Questions))
		}
	}

	// The string-typed id decodes like the numeric one.
	if fromString.Exam.Questions[1].ID != 2 {
		t.Errorf("string id decoded to %d, want 2", fromString.Exam.Questions[1].ID)
	}
	if fromString.Exam.Instructions != fromMap.Exam.Instructions {
		t.Error("instructions differ between string and structured input")
	}
}

func TestNormalizeContentDegradation(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"whitespace", "   \n\t"},
		{"garbage", "esto no es JSON {{{"},
		{"truncated", `{"questions": [`},
	}
	for _, c := range cases {
		content := NormalizeContent(ActivityExam, c.raw)
		if !content.Degraded {
			t.Errorf("%s: expected degraded content", c.name)
		}
		if content.Exam != nil {
			t.Errorf("%s: degraded content carries an exam variant", c.name)
		}
	}

	// The preview keeps a bounded slice of the raw text for logs.
	long := "x" + strings.Repeat("y", 500)
	content := NormalizeContent(ActivitySummary, long)
	if !content.Degraded {
		t.Fatal("non-JSON string should degrade")
	}
	if got := len([]rune(content.RawPreview)); got > rawPreviewLimit {
		t.Errorf("preview is %d runes, want at most %d", got, rawPreviewLimit)
	}
}

func TestFlexIntTolerance(t *testing.T) {
	var step ActivityStep
	cases := []struct {
		raw  string
		want FlexInt
	}{
		{`{"step": 3}`, 3},
		{`{"step": "3"}`, 3},
		{`{"step": 3.0}`, 3},
		{`{"step": "3.7"}`, 3},
		{`{"step": null}`, 0},
		{`{"step": "muchos"}`, 0},
	}
	for _, c := range cases {
		step = ActivityStep{}
		if err := json.Unmarshal([]byte(c.raw), &step); err != nil {
			t.Errorf("unmarshal %s: %v", c.raw, err)
			continue
		}
		if step.Step != c.want {
			t.Errorf("%s decoded step = %d, want %d", c.raw, step.Step, c.want)
		}
	}
}

func TestNormalizeWordSearchShapes(t *testing.T) {
	// Newer payloads: explicit grid.
	withGrid := NormalizeContent(ActivityWordSearch,
		`{"words":[{"word":"sol","hint":"brilla"}],"grid":[["S","O","L"],["A","B","C"]]}`)
	if withGrid.Degraded || withGrid.WordSearch == nil {
		t.Fatal("explicit-grid payload should normalize")
	}
	if len(withGrid.WordSearch.Grid) != 2 {
		t.Errorf("grid has %d rows, want 2", len(withGrid.WordSearch.Grid))
	}

	// Older payloads: placements plus declared size, no grid.
	withPlacements := NormalizeContent(ActivityWordSearch,
		`{"words":[{"word":"sol","position":{"row":0,"col":0},"direction":"across"}],"grid_size":{"rows":5,"cols":5}}`)
	if withPlacements.Degraded || withPlacements.WordSearch == nil {
		t.Fatal("placement payload should normalize")
	}
	if withPlacements.WordSearch.Grid != nil {
		t.Error("placement payload should not carry a grid")
	}
	if withPlacements.WordSearch.GridSize == nil || withPlacements.WordSearch.GridSize.Rows != 5 {
		t.Error("declared grid size lost in normalization")
	}
	if withPlacements.WordSearch.Words[0].Position == nil {
		t.Error("placement lost in normalization")
	}
}

func TestNormalizeContentVariantSelection(t *testing.T) {
	c := NormalizeContent(ActivityStory, `{"story":"Había una vez...","moral":"La paciencia gana"}`)
	if c.Degraded || c.Story == nil {
		t.Fatal("story payload should normalize")
	}
	if c.Exam != nil || c.Slides != nil || c.Crossword != nil {
		t.Error("non-matching variants should stay nil")
	}
	if c.Story.Moral != "La paciencia gana" {
		t.Errorf("moral = %q", c.Story.Moral)
	}
}
