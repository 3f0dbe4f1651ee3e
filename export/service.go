package export

import (
	"fmt"

	"github.com/google/uuid"

	"eduexport/logger"
)

// ExportService is the engine's single entry point. It validates the
// (activity type, format) pair, normalizes the payload, enforces resource
// bounds and dispatches to the per-format renderer. Stateless apart from an
// optional logger; safe for concurrent use.
type ExportService struct {
	word  *WordExportService
	excel *ExcelExportService
	ppt   *PPTExportService
	log   *logger.Logger
}

// NewExportService creates an export service with all three renderers wired.
func NewExportService() *ExportService {
	return &ExportService{
		word:  NewWordExportService(),
		excel: NewExcelExportService(),
		ppt:   NewPPTExportService(),
	}
}

// SetLogger attaches a file logger. Nil-safe: without one the service stays
// silent.
func (s *ExportService) SetLogger(l *logger.Logger) {
	s.log = l
}

// Export runs one complete export. Validation errors come back typed
// (UnsupportedFormatError, ResourceLimitError); renderer faults, panics
// included, come back as RenderError. On success the result carries the
// document bytes, a sanitized filename with extension, and the MIME type.
func (s *ExportService) Export(req ExportRequest) (result *ExportResult, err error) {
	exportID := uuid.New().String()[:8]

	if _, ok := ParseFormat(string(req.Format)); !ok {
		return nil, &UnsupportedFormatError{
			ActivityType: req.ActivityType,
			Format:       req.Format,
		}
	}
	if _, ok := ParseActivityType(string(req.ActivityType)); !ok {
		return nil, &UnsupportedFormatError{
			ActivityType: req.ActivityType,
			Format:       req.Format,
			Allowed:      req.Format.Allowed(),
		}
	}
	if !req.Format.Supports(req.ActivityType) {
		return nil, &UnsupportedFormatError{
			ActivityType: req.ActivityType,
			Format:       req.Format,
			Allowed:      req.Format.Allowed(),
		}
	}

	content := NormalizeContent(req.ActivityType, req.Content)
	if content.Degraded {
		s.logf("[%s] degraded content for %s export: %s", exportID, req.ActivityType, content.RawPreview)
	}

	if err := checkLimits(content); err != nil {
		return nil, err
	}

	// Renderers walk attacker-shaped data through two document libraries;
	// a panic there must not take the caller down.
	defer func() {
		if r := recover(); r != nil {
			s.logf("[%s] renderer panic: %v", exportID, r)
			result = nil
			err = &RenderError{
				ActivityType: req.ActivityType,
				Format:       req.Format,
				Err:          fmt.Errorf("renderer panic: %v", r),
			}
		}
	}()

	var data []byte
	var renderErr error
	switch req.Format {
	case FormatWord:
		data, renderErr = s.word.ExportActivity(req.Title, req.Description, content)
	case FormatSpreadsheet:
		data, renderErr = s.excel.ExportActivity(req.Title, req.Description, content)
	case FormatPresentation:
		scheme := s.resolveScheme(req.Scheme)
		data, renderErr = s.ppt.ExportSlides(req.Title, req.Description, content, scheme)
	}
	if renderErr != nil {
		return nil, &RenderError{
			ActivityType: req.ActivityType,
			Format:       req.Format,
			Err:          renderErr,
		}
	}

	s.logf("[%s] exported %s as %s (%d bytes)", exportID, req.ActivityType, req.Format, len(data))

	return &ExportResult{
		Bytes:             data,
		SuggestedFilename: SanitizeFilename(req.Title) + req.Format.Extension(),
		ContentType:       req.Format.ContentType(),
	}, nil
}

// resolveScheme pins the requested palette when it names a known one and
// draws a random palette otherwise. This is the only randomness in the
// engine; everything downstream of the scheme is deterministic.
func (s *ExportService) resolveScheme(name SchemeName) ColorScheme {
	if name != "" {
		if scheme, ok := SchemeByName(name); ok {
			return scheme
		}
		s.logf("unknown color scheme %q, drawing a random one", name)
	}
	return RandomScheme()
}

// checkLimits bounds the renderable size of a normalized payload. Degraded
// content has no variant data and always passes.
func checkLimits(c Content) error {
	switch {
	case c.Exam != nil && len(c.Exam.Questions) > MaxQuestions:
		return &ResourceLimitError{Kind: "questions", Limit: MaxQuestions, Actual: len(c.Exam.Questions)}
	case c.Survey != nil && len(c.Survey.Questions) > MaxQuestions:
		return &ResourceLimitError{Kind: "questions", Limit: MaxQuestions, Actual: len(c.Survey.Questions)}
	case c.Rubric != nil && len(c.Rubric.Criteria) > MaxRubricCriteria:
		return &ResourceLimitError{Kind: "rubric criteria", Limit: MaxRubricCriteria, Actual: len(c.Rubric.Criteria)}
	case c.Slides != nil && len(c.Slides.Slides) > MaxSlides:
		return &ResourceLimitError{Kind: "slides", Limit: MaxSlides, Actual: len(c.Slides.Slides)}
	}

	if c.Crossword != nil {
		if n := len(c.Crossword.Clues.Across) + len(c.Crossword.Clues.Down); n > MaxQuestions {
			return &ResourceLimitError{Kind: "clues", Limit: MaxQuestions, Actual: n}
		}
		if err := checkGridSize(c.Crossword.GridSize); err != nil {
			return err
		}
	}
	if c.WordSearch != nil {
		if n := len(c.WordSearch.Words); n > MaxQuestions {
			return &ResourceLimitError{Kind: "words", Limit: MaxQuestions, Actual: n}
		}
		if c.WordSearch.GridSize != nil {
			if err := checkGridSize(*c.WordSearch.GridSize); err != nil {
				return err
			}
		}
		if rows := len(c.WordSearch.Grid); rows > MaxGridRows {
			return &ResourceLimitError{Kind: "grid rows", Limit: MaxGridRows, Actual: rows}
		}
		for _, row := range c.WordSearch.Grid {
			if cols := len(row); cols > MaxGridCols {
				return &ResourceLimitError{Kind: "grid columns", Limit: MaxGridCols, Actual: cols}
			}
		}
	}
	return nil
}

func checkGridSize(size GridSize) error {
	if rows := int(size.Rows); rows > MaxGridRows {
		return &ResourceLimitError{Kind: "grid rows", Limit: MaxGridRows, Actual: rows}
	}
	if cols := int(size.Cols); cols > MaxGridCols {
		return &ResourceLimitError{Kind: "grid columns", Limit: MaxGridCols, Actual: cols}
	}
	return nil
}

func (s *ExportService) logf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}
