package export

// ExportRequest is the immutable input of one export call. It is built once
// from the upstream record {title, description?, activityType, content} plus
// the requested format, and lives only for the duration of the call.
type ExportRequest struct {
	Title        string
	Description  string
	ActivityType ActivityType
	// Content is the raw payload: a structured value or a JSON-encoded
	// string. It is normalized exactly once per export.
	Content interface{}
	Format  Format
	// Scheme optionally pins the presentation color scheme. Empty means
	// one of the fixed palettes is drawn at random for this export.
	// Ignored for word and spreadsheet exports.
	Scheme SchemeName
}

// ExportResult is the successful outcome: the document bytes, the sanitized
// download filename (extension included) and the format MIME type. The
// caller owns the buffer; the engine keeps no reference after returning.
type ExportResult struct {
	Bytes             []byte
	SuggestedFilename string
	ContentType       string
}

// Resource bounds applied before rendering. Generated payloads are not
// trusted: a runaway grid_size or slide count must not translate into
// unbounded allocation.
const (
	MaxGridRows       = 100
	MaxGridCols       = 100
	MaxSlides         = 200
	MaxQuestions      = 500 // also bounds crossword clue and word-search word lists
	MaxRubricCriteria = 100
)
