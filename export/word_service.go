package export

import (
	"fmt"
	"strconv"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"eduexport/i18n"
)

// Shared document palette (hex RGB, no prefix).
const (
	colorHeading    = "1E40AF"
	colorSubheading = "3B82F6"
	colorBody       = "334155"
	colorMuted      = "94A3B8"
	colorHeaderRow  = "4472C4"
	colorBlocked    = "1F2937"
	colorBorder     = "D9D9D9"
	colorWhite      = "FFFFFF"
)

// WordExportService handles Word document generation using GoWord (pure Go).
// Word is the universal fallback format: every activity type renders here.
type WordExportService struct{}

// NewWordExportService creates a new Word export service
func NewWordExportService() *WordExportService {
	return &WordExportService{}
}

// ExportActivity renders one activity into a .docx byte buffer. The content
// must already be normalized; degraded content renders as a visible marker
// under the title instead of aborting.
func (s *WordExportService) ExportActivity(title, description string, content Content) ([]byte, error) {
	if title == "" {
		title = i18n.T("doc.default_title")
	}

	doc := goword.New()
	doc.Properties.Title = title
	doc.Properties.Creator = "EduExport"
	doc.Properties.Description = i18n.T("doc.generated_by")

	sec := doc.AddSection()
	sec.AddTitle(title, 1)

	if description != "" {
		sec.AddText(description,
			&style.FontStyle{Size: 11, Color: colorBody},
			&style.ParagraphStyle{SpaceAfter: 200})
		sec.AddTextBreak(1)
	}

	if content.Degraded {
		s.addDegradedMarker(sec, content)
	} else {
		switch content.Type {
		case ActivityExam:
			s.addExam(sec, content.Exam)
		case ActivitySummary:
			s.addSummary(sec, content.Summary)
		case ActivityClassActivity:
			s.addClassActivity(sec, content.ClassActivity)
		case ActivityRubric:
			s.addRubric(sec, content.Rubric)
		case ActivityWritingCorrection:
			s.addCorrection(sec, content.Correction)
		case ActivitySlides:
			s.addSlides(sec, content.Slides)
		case ActivityEmail:
			s.addEmail(sec, content.Email)
		case ActivitySurvey:
			s.addSurvey(sec, content.Survey)
		case ActivityStory:
			s.addStory(sec, content.Story)
		case ActivityCrossword:
			s.addCrossword(doc, sec, content.Crossword)
		case ActivityWordSearch:
			s.addWordSearch(doc, sec, content.WordSearch)
		}
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

// capitalize upper-cases the first rune, matching how the upstream platform
// labels error categories ("gramática" → "Gramática").
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// addDegradedMarker emits the visible placeholder for unparsable content so
// the user still receives a complete document, never a blank file.
func (s *WordExportService) addDegradedMarker(sec *goword.Section, content Content) {
	sec.AddText(i18n.T("doc.content_unavailable"),
		&style.FontStyle{Size: 12, Italic: true, Color: colorMuted},
		nil)
	if content.RawPreview != "" {
		sec.AddText(content.RawPreview,
			&style.FontStyle{Size: 9, Color: colorMuted},
			&style.ParagraphStyle{Indent: 360})
	}
}

func (s *WordExportService) addHeading(sec *goword.Section, text string) {
	sec.AddText(text,
		&style.FontStyle{Bold: true, Size: 14, Color: colorHeading},
		nil)
}

func (s *WordExportService) addSubheading(sec *goword.Section, text string) {
	sec.AddText(text,
		&style.FontStyle{Bold: true, Size: 13, Color: colorSubheading},
		nil)
}

func (s *WordExportService) addBody(sec *goword.Section, text string) {
	sec.AddText(text,
		&style.FontStyle{Size: 11, Color: colorBody},
		nil)
}

func (s *WordExportService) addBullet(sec *goword.Section, text string) {
	sec.AddText("• "+text,
		&style.FontStyle{Size: 11, Color: colorBody},
		&style.ParagraphStyle{Indent: 360})
}

func (s *WordExportService) addExam(sec *goword.Section, exam *ExamContent) {
	if exam == nil {
		return
	}
	if exam.Instructions != "" {
		s.addHeading(sec, i18n.T("exam.instructions"))
		s.addBody(sec, exam.Instructions)
		sec.AddTextBreak(1)
	}

	s.addHeading(sec, i18n.T("exam.questions"))
	for _, q := range exam.Questions {
		sec.AddText(i18n.T("exam.question_label", int(q.ID))+q.Question,
			&style.FontStyle{Bold: true, Size: 11, Color: colorBody},
			&style.ParagraphStyle{SpaceAfter: 120})

		if q.Type == "multiple_choice" {
			for _, opt := range q.Options {
				s.addBullet(sec, opt)
			}
		}
		sec.AddTextBreak(1)
	}
}

func (s *WordExportService) addSummary(sec *goword.Section, summary *SummaryContent) {
	if summary == nil {
		return
	}
	s.addHeading(sec, i18n.T("summary.heading"))
	s.addBody(sec, summary.Summary)

	if len(summary.KeyPoints) > 0 {
		sec.AddTextBreak(1)
		s.addHeading(sec, i18n.T("summary.key_points"))
		for _, point := range summary.KeyPoints {
			s.addBullet(sec, point)
		}
	}
}

func (s *WordExportService) addClassActivity(sec *goword.Section, ca *ClassActivityContent) {
	if ca == nil {
		return
	}
	if len(ca.Objectives) > 0 {
		s.addHeading(sec, i18n.T("class.objectives"))
		for _, obj := range ca.Objectives {
			s.addBullet(sec, obj)
		}
		sec.AddTextBreak(1)
	}
	if len(ca.Materials) > 0 {
		s.addHeading(sec, i18n.T("class.materials"))
		for _, mat := range ca.Materials {
			s.addBullet(sec, mat)
		}
		sec.AddTextBreak(1)
	}
	if len(ca.Steps) > 0 {
		s.addHeading(sec, i18n.T("class.steps"))
		for _, step := range ca.Steps {
			label := i18n.T("class.step_label", int(step.Step), int(step.DurationMinutes))
			sec.AddText(label+step.Description,
				&style.FontStyle{Size: 11, Color: colorBody},
				&style.ParagraphStyle{SpaceAfter: 120})
		}
	}
}

func (s *WordExportService) addRubric(sec *goword.Section, rubric *RubricContent) {
	if rubric == nil {
		return
	}
	s.addHeading(sec, i18n.T("rubric.heading"))

	for _, criterion := range rubric.Criteria {
		s.addSubheading(sec, fmt.Sprintf("%s (%d%%)", criterion.Name, int(criterion.Weight)))

		ts := &style.TableStyle{Width: 9000, Alignment: "center"}
		ts.SetAllBorders("single", 4, colorBorder)
		tbl := sec.AddTable(ts)
		tbl.Grid = []int{2200, 1400, 5400}

		headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
		for i, head := range []string{
			i18n.T("rubric.col_level"),
			i18n.T("rubric.col_points"),
			i18n.T("rubric.col_description"),
		} {
			headerRow.AddCell(tbl.Grid[i], &style.CellStyle{
				Shading: &style.Shading{Fill: colorHeaderRow},
			}).AddText(head, &style.FontStyle{Bold: true, Size: 10, Color: colorWhite}, nil)
		}

		for _, level := range criterion.Levels {
			row := tbl.AddRow(0, nil)
			row.AddCell(tbl.Grid[0], nil).AddText(level.Level, &style.FontStyle{Size: 10}, nil)
			row.AddCell(tbl.Grid[1], nil).AddText(strconv.Itoa(int(level.Points)), &style.FontStyle{Size: 10}, nil)
			row.AddCell(tbl.Grid[2], nil).AddText(level.Description, &style.FontStyle{Size: 10}, nil)
		}

		sec.AddTextBreak(1)
	}
}

func (s *WordExportService) addCorrection(sec *goword.Section, correction *CorrectionContent) {
	if correction == nil {
		return
	}
	s.addHeading(sec, i18n.T("correction.original"))
	s.addBody(sec, correction.OriginalText)
	sec.AddTextBreak(1)

	s.addHeading(sec, i18n.T("correction.corrected"))
	s.addBody(sec, correction.CorrectedText)

	if len(correction.Errors) > 0 {
		sec.AddTextBreak(1)
		s.addHeading(sec, i18n.T("correction.errors"))
		for _, e := range correction.Errors {
			label := capitalize(e.Type)
			sec.AddText(fmt.Sprintf("%s: '%s' → '%s'", label, e.Original, e.Correction),
				&style.FontStyle{Bold: true, Size: 11, Color: colorBody},
				nil)
			sec.AddText(i18n.T("correction.explanation", e.Explanation),
				&style.FontStyle{Size: 11, Color: colorBody},
				&style.ParagraphStyle{Indent: 360, SpaceAfter: 120})
		}
	}
}

func (s *WordExportService) addSlides(sec *goword.Section, slides *SlidesContent) {
	if slides == nil {
		return
	}
	for _, slide := range slides.Slides {
		s.addHeading(sec, i18n.T("slides.slide_label", int(slide.SlideNumber), slide.Title))
		for _, point := range slide.Content {
			s.addBullet(sec, point)
		}
		if slide.Notes != "" {
			sec.AddText(i18n.T("slides.notes_label")+slide.Notes,
				&style.FontStyle{Size: 10, Italic: true, Color: colorMuted},
				nil)
		}
		sec.AddTextBreak(1)
	}
}

func (s *WordExportService) addEmail(sec *goword.Section, email *EmailContent) {
	if email == nil {
		return
	}
	s.addHeading(sec, i18n.T("email.subject"))
	s.addBody(sec, email.Subject)
	sec.AddTextBreak(1)

	s.addHeading(sec, i18n.T("email.body"))
	s.addBody(sec, email.Body)

	if email.Closing != "" {
		sec.AddTextBreak(1)
		s.addBody(sec, email.Closing)
	}
}

func (s *WordExportService) addSurvey(sec *goword.Section, survey *SurveyContent) {
	if survey == nil {
		return
	}
	if survey.Description != "" {
		s.addBody(sec, survey.Description)
		sec.AddTextBreak(1)
	}

	s.addHeading(sec, i18n.T("exam.questions"))
	for _, q := range survey.Questions {
		sec.AddText(fmt.Sprintf("%d. %s", int(q.ID), q.Question),
			&style.FontStyle{Bold: true, Size: 11, Color: colorBody},
			&style.ParagraphStyle{SpaceAfter: 120})

		if q.Type == "multiple_choice" {
			for _, opt := range q.Options {
				s.addBullet(sec, opt)
			}
		}
		sec.AddTextBreak(1)
	}
}

func (s *WordExportService) addStory(sec *goword.Section, story *StoryContent) {
	if story == nil {
		return
	}
	s.addBody(sec, story.Story)

	if story.Moral != "" {
		sec.AddTextBreak(1)
		s.addHeading(sec, i18n.T("story.moral"))
		s.addBody(sec, story.Moral)
	}
}

// addCrossword draws the reconstructed grid as a bordered table — blocked
// cells filled solid, open cells showing their clue number — then starts a
// new section with the plain answer listing.
func (s *WordExportService) addCrossword(doc *goword.Document, sec *goword.Section, crossword *CrosswordContent) {
	if crossword == nil {
		return
	}
	grid := BuildCrosswordGrid(crossword.Clues, crossword.GridSize)

	s.addHeading(sec, i18n.T("crossword.heading"))
	s.addGridTable(sec, grid, false)

	// Answer key on its own section
	keySec := doc.AddSection()
	s.addHeading(keySec, i18n.T("crossword.answer_key"))

	s.addSubheading(keySec, i18n.T("crossword.across"))
	for _, clue := range crossword.Clues.Across {
		s.addBody(keySec, fmt.Sprintf("%d. %s — %s", int(clue.Number), clue.Clue, strings.ToUpper(clue.Answer)))
	}
	keySec.AddTextBreak(1)

	s.addSubheading(keySec, i18n.T("crossword.down"))
	for _, clue := range crossword.Clues.Down {
		s.addBody(keySec, fmt.Sprintf("%d. %s — %s", int(clue.Number), clue.Clue, strings.ToUpper(clue.Answer)))
	}
}

// addWordSearch draws the letter grid (explicit when the generator supplied
// one, reconstructed from placements otherwise) and lists the words with
// their hints, answers on a separate section.
func (s *WordExportService) addWordSearch(doc *goword.Document, sec *goword.Section, ws *WordSearchContent) {
	if ws == nil {
		return
	}
	s.addHeading(sec, i18n.T("wordsearch.heading"))

	if len(ws.Grid) > 0 {
		s.addLetterTable(sec, ws.Grid)
	} else if ws.GridSize != nil {
		grid := BuildWordSearchGrid(ws.Words, *ws.GridSize)
		s.addGridTable(sec, grid, true)
	}
	sec.AddTextBreak(1)

	s.addHeading(sec, i18n.T("wordsearch.words"))
	for _, w := range ws.Words {
		text := w.Word
		if w.Hint != "" {
			text += " — " + w.Hint
		}
		s.addBullet(sec, text)
	}

	keySec := doc.AddSection()
	s.addHeading(keySec, i18n.T("crossword.answer_key"))
	for _, w := range ws.Words {
		s.addBody(keySec, strings.ToUpper(w.Word))
	}
}

// addGridTable renders a reconstructed grid. With letters=false open cells
// show their clue number (blank when unnumbered); with letters=true they
// show the placed letter.
func (s *WordExportService) addGridTable(sec *goword.Section, grid *Grid, letters bool) {
	if grid.Rows == 0 || grid.Cols == 0 {
		return
	}

	cellWidth := 9000 / grid.Cols
	if cellWidth < 240 {
		cellWidth = 240
	}

	ts := &style.TableStyle{Width: cellWidth * grid.Cols, Alignment: "center"}
	ts.SetAllBorders("single", 4, colorBody)
	tbl := sec.AddTable(ts)
	tbl.Grid = make([]int, grid.Cols)
	for i := range tbl.Grid {
		tbl.Grid[i] = cellWidth
	}

	for r := 0; r < grid.Rows; r++ {
		row := tbl.AddRow(0, nil)
		for c := 0; c < grid.Cols; c++ {
			cell := grid.Cells[r][c]
			if cell.Kind == CellBlocked {
				row.AddCell(cellWidth, &style.CellStyle{
					Shading: &style.Shading{Fill: colorBlocked},
				}).AddText(" ", &style.FontStyle{Size: 8}, nil)
				continue
			}

			text := " "
			if letters {
				if cell.Letter != 0 {
					text = strings.ToUpper(string(cell.Letter))
				}
			} else if cell.Number > 0 {
				text = strconv.Itoa(cell.Number)
			}
			row.AddCell(cellWidth, nil).AddText(text,
				&style.FontStyle{Size: 8, Color: colorBody},
				&style.ParagraphStyle{Alignment: style.AlignCenter})
		}
	}
}

// addLetterTable renders an explicit letter matrix as supplied upstream.
func (s *WordExportService) addLetterTable(sec *goword.Section, letters [][]string) {
	cols := 0
	for _, row := range letters {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	cellWidth := 9000 / cols
	if cellWidth < 240 {
		cellWidth = 240
	}

	ts := &style.TableStyle{Width: cellWidth * cols, Alignment: "center"}
	ts.SetAllBorders("single", 4, colorBody)
	tbl := sec.AddTable(ts)
	tbl.Grid = make([]int, cols)
	for i := range tbl.Grid {
		tbl.Grid[i] = cellWidth
	}

	for _, letterRow := range letters {
		row := tbl.AddRow(0, nil)
		for c := 0; c < cols; c++ {
			text := " "
			if c < len(letterRow) && letterRow[c] != "" {
				text = strings.ToUpper(letterRow[c])
			}
			row.AddCell(cellWidth, nil).AddText(text,
				&style.FontStyle{Size: 8, Color: colorBody},
				&style.ParagraphStyle{Alignment: style.AlignCenter})
		}
	}
}
