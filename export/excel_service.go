package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"eduexport/i18n"
)

// ExcelExportService handles spreadsheet generation using excelize. Only the
// tabular activity types render here: exam, survey, rubric, crossword and
// word_search.
type ExcelExportService struct{}

// NewExcelExportService creates a new Excel export service
func NewExcelExportService() *ExcelExportService {
	return &ExcelExportService{}
}

const sheetName = "Actividad"

// maxColWidth caps auto-sized columns.
const maxColWidth = 50

// ExportActivity renders one activity into an .xlsx byte buffer.
func (s *ExcelExportService) ExportActivity(title, description string, content Content) ([]byte, error) {
	if title == "" {
		title = i18n.T("doc.default_title")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	w, err := newSheetWriter(f, sheetName)
	if err != nil {
		return nil, err
	}

	// Row 1: document title merged across the four data columns.
	w.set(0, 1, title, w.titleStyle)
	w.merge(0, 1, 3, 1)

	if content.Degraded {
		w.set(0, 3, i18n.T("doc.content_unavailable"), w.mutedStyle)
		if content.RawPreview != "" {
			w.set(0, 4, content.RawPreview, w.mutedStyle)
		}
	} else {
		switch content.Type {
		case ActivityExam:
			s.writeQuestions(w, content.Exam.Questions)
		case ActivitySurvey:
			s.writeQuestions(w, content.Survey.Questions)
		case ActivityRubric:
			s.writeRubric(w, content.Rubric)
		case ActivityCrossword:
			s.writeCrossword(w, content.Crossword)
		case ActivityWordSearch:
			s.writeWordSearch(w, content.WordSearch)
		}
	}

	w.autoWidth()

	// No creation timestamp: identical input must produce identical bytes.
	f.SetDocProps(&excelize.DocProperties{
		Creator:        "EduExport",
		Description:    i18n.T("doc.generated_by"),
		Identifier:     "xlsx",
		LastModifiedBy: "EduExport",
		Title:          title,
	})

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), nil
}

// writeQuestions renders the exam sheet; surveys reuse it (their questions
// simply have no correct answer).
func (s *ExcelExportService) writeQuestions(w *sheetWriter, questions []ExamQuestion) {
	row := 3
	headers := []string{
		i18n.T("exam.col_number"),
		i18n.T("exam.col_question"),
		i18n.T("exam.col_type"),
		i18n.T("exam.col_answer"),
	}
	for col, head := range headers {
		w.set(col, row, head, w.headerStyle)
	}

	row++
	for _, q := range questions {
		w.set(0, row, int(q.ID), w.dataStyle)
		w.set(1, row, q.Question, w.dataStyle)
		w.set(2, row, q.Type, w.dataStyle)
		w.set(3, row, q.CorrectAnswer, w.dataStyle)
		row++
	}
}

func (s *ExcelExportService) writeRubric(w *sheetWriter, rubric *RubricContent) {
	row := 3
	for _, criterion := range rubric.Criteria {
		w.set(0, row, criterion.Name, w.boldStyle)
		w.merge(0, row, 3, row)
		row++

		for col, head := range []string{
			i18n.T("rubric.col_level"),
			i18n.T("rubric.col_points"),
			i18n.T("rubric.col_description"),
		} {
			w.set(col, row, head, w.headerStyle)
		}
		row++

		for _, level := range criterion.Levels {
			w.set(0, row, level.Level, w.dataStyle)
			w.set(1, row, int(level.Points), w.dataStyle)
			w.set(2, row, level.Description, w.dataStyle)
			row++
		}

		// Spacer row between criteria
		row++
	}
}

// writeCrossword draws the reconstructed grid into a contiguous cell block,
// then lists the clues below it.
func (s *ExcelExportService) writeCrossword(w *sheetWriter, crossword *CrosswordContent) {
	grid := BuildCrosswordGrid(crossword.Clues, crossword.GridSize)

	row := 3
	w.set(0, row, i18n.T("crossword.heading"), w.boldStyle)
	row++

	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			cell := grid.Cells[r][c]
			if cell.Kind == CellBlocked {
				w.set(c, row, "", w.blockedStyle)
			} else if cell.Number > 0 {
				w.set(c, row, cell.Number, w.gridStyle)
			} else {
				w.set(c, row, "", w.gridStyle)
			}
		}
		row++
	}
	row++

	for col, head := range []string{
		i18n.T("crossword.col_direction"),
		i18n.T("crossword.col_number"),
		i18n.T("crossword.col_clue"),
		i18n.T("crossword.col_answer"),
	} {
		w.set(col, row, head, w.headerStyle)
	}
	row++

	for _, clue := range crossword.Clues.Across {
		w.set(0, row, i18n.T("crossword.across"), w.dataStyle)
		w.set(1, row, int(clue.Number), w.dataStyle)
		w.set(2, row, clue.Clue, w.dataStyle)
		w.set(3, row, strings.ToUpper(clue.Answer), w.dataStyle)
		row++
	}
	for _, clue := range crossword.Clues.Down {
		w.set(0, row, i18n.T("crossword.down"), w.dataStyle)
		w.set(1, row, int(clue.Number), w.dataStyle)
		w.set(2, row, clue.Clue, w.dataStyle)
		w.set(3, row, strings.ToUpper(clue.Answer), w.dataStyle)
		row++
	}
}

func (s *ExcelExportService) writeWordSearch(w *sheetWriter, ws *WordSearchContent) {
	row := 3
	w.set(0, row, i18n.T("wordsearch.words"), w.boldStyle)
	row++

	for _, word := range ws.Words {
		w.set(0, row, word.Word, w.dataStyle)
		w.set(1, row, word.Hint, w.dataStyle)
		row++
	}

	letters := ws.Grid
	if len(letters) == 0 && ws.GridSize != nil {
		grid := BuildWordSearchGrid(ws.Words, *ws.GridSize)
		letters = make([][]string, grid.Rows)
		for r := 0; r < grid.Rows; r++ {
			letters[r] = make([]string, grid.Cols)
			for c := 0; c < grid.Cols; c++ {
				if cell := grid.Cells[r][c]; cell.Letter != 0 {
					letters[r][c] = string(cell.Letter)
				}
			}
		}
	}
	if len(letters) == 0 {
		return
	}

	row++
	w.set(0, row, i18n.T("wordsearch.heading"), w.boldStyle)
	row++

	for _, letterRow := range letters {
		for c, letter := range letterRow {
			w.set(c, row, strings.ToUpper(letter), w.gridStyle)
		}
		row++
	}
}

// sheetWriter wraps one worksheet with the shared styles and the write
// tracking needed for post-hoc column sizing. Cell addresses come from the
// base-26 codec.
type sheetWriter struct {
	f     *excelize.File
	sheet string

	titleStyle   int
	headerStyle  int
	dataStyle    int
	boldStyle    int
	mutedStyle   int
	gridStyle    int
	blockedStyle int

	merged  map[string]bool
	lengths map[string]cellLength
}

// cellLength remembers where a value landed and how wide it prints.
type cellLength struct {
	col    int
	length int
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	w := &sheetWriter{
		f:       f,
		sheet:   sheet,
		merged:  make(map[string]bool),
		lengths: make(map[string]cellLength),
	}

	var err error
	w.titleStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorHeaderRow}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "FFFFFF", Style: 1},
			{Type: "top", Color: "FFFFFF", Style: 1},
			{Type: "bottom", Color: "FFFFFF", Style: 1},
			{Type: "right", Color: "FFFFFF", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	w.dataStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: colorBorder, Style: 1},
			{Type: "top", Color: colorBorder, Style: 1},
			{Type: "bottom", Color: colorBorder, Style: 1},
			{Type: "right", Color: colorBorder, Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create data style: %w", err)
	}

	w.boldStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	w.mutedStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 10, Color: colorMuted},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create muted style: %w", err)
	}

	w.gridStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: colorBody, Style: 1},
			{Type: "top", Color: colorBody, Style: 1},
			{Type: "bottom", Color: colorBody, Style: 1},
			{Type: "right", Color: colorBody, Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create grid style: %w", err)
	}

	w.blockedStyle, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorBlocked}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: colorBody, Style: 1},
			{Type: "top", Color: colorBody, Style: 1},
			{Type: "bottom", Color: colorBody, Style: 1},
			{Type: "right", Color: colorBody, Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blocked style: %w", err)
	}

	return w, nil
}

// set writes one cell (zero-based column, one-based row) and records the
// stringified length for column sizing.
func (w *sheetWriter) set(col, row int, value interface{}, styleID int) {
	ref := cellRef(col, row)
	w.f.SetCellValue(w.sheet, ref, value)
	if styleID != 0 {
		w.f.SetCellStyle(w.sheet, ref, ref, styleID)
	}
	w.lengths[ref] = cellLength{col: col, length: len([]rune(fmt.Sprintf("%v", value)))}
}

// merge merges the rectangle and marks its cells so autoWidth skips them.
func (w *sheetWriter) merge(col1, row1, col2, row2 int) {
	w.f.MergeCell(w.sheet, cellRef(col1, row1), cellRef(col2, row2))
	for c := col1; c <= col2; c++ {
		for r := row1; r <= row2; r++ {
			w.merged[cellRef(c, r)] = true
		}
	}
}

// autoWidth sizes every written column from the longest stringified value
// plus padding, capped at maxColWidth. Cells belonging to a merged region
// are skipped so a long merged title does not stretch its anchor column.
func (w *sheetWriter) autoWidth() {
	longest := make(map[int]int)
	for ref, cl := range w.lengths {
		if w.merged[ref] {
			continue
		}
		if cl.length > longest[cl.col] {
			longest[cl.col] = cl.length
		}
	}

	for col, length := range longest {
		width := float64(length + 2)
		if width > maxColWidth {
			width = maxColWidth
		}
		if width < 4 {
			width = 4
		}
		letter := ColumnLetter(col)
		w.f.SetColWidth(w.sheet, letter, letter, width)
	}
}
