package export

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt tolerates the number/string ambiguity of AI-generated JSON:
// "id": 3, "id": "3" and "id": 3.0 all decode to 3. Anything else decodes
// to zero instead of failing the whole payload.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		*n = FlexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*n = FlexInt(int(v))
		return nil
	}
	*n = 0
	return nil
}

// ExamQuestion is one question of an exam or survey.
type ExamQuestion struct {
	ID            FlexInt  `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        FlexInt  `json:"points,omitempty"`
}

// ExamContent is the payload shape for the exam activity type.
type ExamContent struct {
	Instructions string         `json:"instructions,omitempty"`
	Questions    []ExamQuestion `json:"questions"`
}

// SummaryContent is the payload shape for the summary activity type.
type SummaryContent struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points,omitempty"`
}

// ActivityStep is one step of a class activity.
type ActivityStep struct {
	Step            FlexInt `json:"step"`
	DurationMinutes FlexInt `json:"duration_minutes"`
	Description     string  `json:"description"`
}

// ClassActivityContent is the payload shape for the class_activity type.
type ClassActivityContent struct {
	Objectives []string       `json:"objectives,omitempty"`
	Materials  []string       `json:"materials,omitempty"`
	Steps      []ActivityStep `json:"steps,omitempty"`
}

// RubricLevel is one performance level of a rubric criterion.
type RubricLevel struct {
	Level       string  `json:"level"`
	Points      FlexInt `json:"points"`
	Description string  `json:"description"`
}

// RubricCriterion is one weighted criterion with its levels.
type RubricCriterion struct {
	Name   string        `json:"name"`
	Weight FlexInt       `json:"weight"`
	Levels []RubricLevel `json:"levels"`
}

// RubricContent is the payload shape for the rubric activity type.
type RubricContent struct {
	Criteria []RubricCriterion `json:"criteria"`
}

// CorrectionError is one detected error of a writing correction.
type CorrectionError struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

// CorrectionContent is the payload shape for the writing_correction type.
type CorrectionContent struct {
	OriginalText  string            `json:"original_text"`
	CorrectedText string            `json:"corrected_text"`
	Errors        []CorrectionError `json:"errors,omitempty"`
}

// Slide is one slide of a deck.
type Slide struct {
	SlideNumber FlexInt  `json:"slide_number"`
	Title       string   `json:"title"`
	Content     []string `json:"content"`
	Notes       string   `json:"notes,omitempty"`
}

// SlidesContent is the payload shape for the slides activity type.
type SlidesContent struct {
	Slides []Slide `json:"slides"`
}

// EmailContent is the payload shape for the email activity type.
type EmailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Closing string `json:"closing,omitempty"`
}

// SurveyContent is the payload shape for the survey activity type.
type SurveyContent struct {
	Description string         `json:"description,omitempty"`
	Questions   []ExamQuestion `json:"questions"`
}

// StoryContent is the payload shape for the story activity type.
type StoryContent struct {
	Story string `json:"story"`
	Moral string `json:"moral,omitempty"`
}

// GridPosition is a zero-based (row, col) cell coordinate.
type GridPosition struct {
	Row FlexInt `json:"row"`
	Col FlexInt `json:"col"`
}

// GridSize is the declared size of a puzzle grid.
type GridSize struct {
	Rows FlexInt `json:"rows"`
	Cols FlexInt `json:"cols"`
}

// Clue is a crossword entry: direction is implied by which list it sits in.
type Clue struct {
	Number   FlexInt      `json:"number"`
	Clue     string       `json:"clue"`
	Answer   string       `json:"answer"`
	Position GridPosition `json:"position"`
}

// CrosswordClues groups clues by direction.
type CrosswordClues struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

// CrosswordContent is the payload shape for the crossword activity type.
type CrosswordContent struct {
	Clues    CrosswordClues `json:"clues"`
	GridSize GridSize       `json:"grid_size"`
}

// WordEntry is one hidden word of a word search. Older payloads only carry
// word and hint; newer ones may add a placement.
type WordEntry struct {
	Word      string        `json:"word"`
	Hint      string        `json:"hint,omitempty"`
	Position  *GridPosition `json:"position,omitempty"`
	Direction string        `json:"direction,omitempty"`
}

// WordSearchContent is the payload shape for the word_search activity type.
// The generator historically emits the full letter grid; placements are the
// fallback when it does not.
type WordSearchContent struct {
	Words    []WordEntry `json:"words"`
	Grid     [][]string  `json:"grid,omitempty"`
	GridSize *GridSize   `json:"grid_size,omitempty"`
}

// Content is the normalized, typed payload of one export. Exactly the
// variant matching Type is populated; the others stay nil. Degraded marks a
// payload that could not be parsed — rendering continues with a visible
// placeholder instead of failing.
type Content struct {
	Type ActivityType

	Exam          *ExamContent
	Summary       *SummaryContent
	ClassActivity *ClassActivityContent
	Rubric        *RubricContent
	Correction    *CorrectionContent
	Slides        *SlidesContent
	Email         *EmailContent
	Survey        *SurveyContent
	Story         *StoryContent
	Crossword     *CrosswordContent
	WordSearch    *WordSearchContent

	Degraded   bool
	RawPreview string
}

const rawPreviewLimit = 120

// NormalizeContent turns a raw payload — a structured value or a
// JSON-encoded string — into typed content. It never fails: payloads that
// cannot be parsed come back with Degraded set and a short preview of the
// raw text, and renderers emit a visible marker for them.
func NormalizeContent(t ActivityType, raw interface{}) Content {
	c := Content{Type: t}

	var data []byte
	switch v := raw.(type) {
	case nil:
		c.Degraded = true
		return c
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		// Already structured (map, slice or typed struct): round-trip
		// through JSON so every variant is read the same defensive way.
		encoded, err := json.Marshal(v)
		if err != nil {
			c.Degraded = true
			return c
		}
		data = encoded
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		c.Degraded = true
		return c
	}

	if err := c.decodeVariant(data); err != nil {
		c.Degraded = true
		c.RawPreview = preview(string(data))
	}
	return c
}

func (c *Content) decodeVariant(data []byte) error {
	switch c.Type {
	case ActivityExam:
		v := &ExamContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Exam = v
	case ActivitySummary:
		v := &SummaryContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Summary = v
	case ActivityClassActivity:
		v := &ClassActivityContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.ClassActivity = v
	case ActivityRubric:
		v := &RubricContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Rubric = v
	case ActivityWritingCorrection:
		v := &CorrectionContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Correction = v
	case ActivitySlides:
		v := &SlidesContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Slides = v
	case ActivityEmail:
		v := &EmailContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Email = v
	case ActivitySurvey:
		v := &SurveyContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Survey = v
	case ActivityStory:
		v := &StoryContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Story = v
	case ActivityCrossword:
		v := &CrosswordContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.Crossword = v
	case ActivityWordSearch:
		v := &WordSearchContent{}
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		c.WordSearch = v
	}
	return nil
}

func preview(raw string) string {
	raw = strings.TrimSpace(raw)
	runes := []rune(raw)
	if len(runes) > rawPreviewLimit {
		return string(runes[:rawPreviewLimit-3]) + "..."
	}
	return raw
}
