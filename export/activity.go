package export

// ActivityType classifies a piece of generated educational content. The tag
// determines both the content shape and which export formats apply.
type ActivityType string

const (
	ActivityExam              ActivityType = "exam"
	ActivitySummary           ActivityType = "summary"
	ActivityClassActivity     ActivityType = "class_activity"
	ActivityRubric            ActivityType = "rubric"
	ActivityWritingCorrection ActivityType = "writing_correction"
	ActivitySlides            ActivityType = "slides"
	ActivityEmail             ActivityType = "email"
	ActivitySurvey            ActivityType = "survey"
	ActivityStory             ActivityType = "story"
	ActivityCrossword         ActivityType = "crossword"
	ActivityWordSearch        ActivityType = "word_search"
)

// AllActivityTypes lists every exportable activity type, in the order the
// upstream platform defines them.
var AllActivityTypes = []ActivityType{
	ActivityExam,
	ActivitySummary,
	ActivityClassActivity,
	ActivityRubric,
	ActivityWritingCorrection,
	ActivitySlides,
	ActivityEmail,
	ActivitySurvey,
	ActivityStory,
	ActivityCrossword,
	ActivityWordSearch,
}

// ParseActivityType validates a raw tag against the closed enum.
func ParseActivityType(raw string) (ActivityType, bool) {
	t := ActivityType(raw)
	for _, known := range AllActivityTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Format identifies a target document format.
type Format string

const (
	FormatWord         Format = "word"
	FormatSpreadsheet  Format = "spreadsheet"
	FormatPresentation Format = "presentation"
)

// ParseFormat validates a raw format name against the closed enum.
func ParseFormat(raw string) (Format, bool) {
	switch f := Format(raw); f {
	case FormatWord, FormatSpreadsheet, FormatPresentation:
		return f, true
	}
	return "", false
}

// spreadsheetTypes is the allow-list inherited from the upstream platform:
// only tabular activities have a meaningful spreadsheet form.
var spreadsheetTypes = []ActivityType{
	ActivityExam,
	ActivitySurvey,
	ActivityRubric,
	ActivityCrossword,
	ActivityWordSearch,
}

// presentationTypes: only slide decks have a presentation form.
var presentationTypes = []ActivityType{
	ActivitySlides,
}

// Allowed returns the activity types the format can render. Word is the
// universal fallback and accepts every type.
func (f Format) Allowed() []ActivityType {
	switch f {
	case FormatWord:
		out := make([]ActivityType, len(AllActivityTypes))
		copy(out, AllActivityTypes)
		return out
	case FormatSpreadsheet:
		out := make([]ActivityType, len(spreadsheetTypes))
		copy(out, spreadsheetTypes)
		return out
	case FormatPresentation:
		out := make([]ActivityType, len(presentationTypes))
		copy(out, presentationTypes)
		return out
	}
	return nil
}

// Supports reports whether the format has a renderer for the activity type.
func (f Format) Supports(t ActivityType) bool {
	for _, allowed := range f.Allowed() {
		if t == allowed {
			return true
		}
	}
	return false
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatWord:
		return ".docx"
	case FormatSpreadsheet:
		return ".xlsx"
	case FormatPresentation:
		return ".pptx"
	}
	return ""
}

// ContentType returns the MIME type delivered with the export.
func (f Format) ContentType() string {
	switch f {
	case FormatWord:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatSpreadsheet:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPresentation:
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	}
	return "application/octet-stream"
}
