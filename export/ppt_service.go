package export

import (
	"bytes"
	"fmt"
	"strconv"

	ppt "github.com/VantageDataChat/GoPPT"

	"eduexport/i18n"
)

// PPTExportService handles PowerPoint generation using GoPPT (pure Go).
// Only the slides activity type renders here.
type PPTExportService struct{}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService() *PPTExportService {
	return &PPTExportService{}
}

// Slide geometry - 16:9 widescreen
const (
	emuPerInch = 914400

	pptMarginLeft = int64(0.7 * emuPerInch)

	pptSlideWidth   = int64(10.0 * emuPerInch)
	pptSlideHeight  = int64(5.625 * emuPerInch)
	pptContentWidth = int64(8.9 * emuPerInch)

	pptAccentBarWidth = int64(0.18 * emuPerInch)

	pptFontTitle    = 40
	pptFontSubtitle = 20
	pptFontHeading  = 28
	pptFontBody     = 15
	pptFontCard     = 14
	pptFontBadge    = 16
	pptFontNotes    = 9
)

// helper: create a solid fill from RRGGBB hex
func solidFill(rgb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor("FF" + rgb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// ExportSlides renders a slide deck into a .pptx byte buffer. The scheme is
// chosen once per export at the orchestration boundary and applied
// uniformly to every slide, so two exports differ only when their schemes
// do.
func (s *PPTExportService) ExportSlides(title, description string, content Content, scheme ColorScheme) ([]byte, error) {
	if title == "" {
		title = i18n.T("doc.default_title")
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = "EduExport"

	var slides []Slide
	if content.Slides != nil {
		slides = content.Slides.Slides
	}

	if len(slides) == 0 {
		// Degraded or empty deck: a lone title slide with the visible
		// marker keeps the export from coming back blank.
		subtitle := description
		if content.Degraded {
			subtitle = i18n.T("doc.content_unavailable")
		}
		s.addTitleSlide(p.GetActiveSlide(), title, subtitle, "", scheme)
	}

	for i, slide := range slides {
		plan := PlanSlide(i, len(slide.Content))

		var target *ppt.Slide
		if i == 0 {
			target = p.GetActiveSlide()
		} else {
			target = p.CreateSlide()
		}

		if plan.Kind == TitleSlide {
			heading := slide.Title
			if heading == "" {
				heading = title
			}
			subtitle := ""
			if len(slide.Content) > 0 {
				subtitle = slide.Content[0]
			}
			s.addTitleSlide(target, heading, subtitle, slide.Notes, scheme)
			continue
		}

		s.addContentSlide(target, slide, plan, scheme)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// addTitleSlide renders the full-bleed opening slide.
func (s *PPTExportService) addTitleSlide(slide *ppt.Slide, title, subtitle, notes string, scheme ColorScheme) {
	// Full-bleed background
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(pptSlideWidth).SetHeight(pptSlideHeight)
	bg.SetFill(solidFill(scheme.Primary))

	// Accent stripe near the bottom
	stripe := slide.CreateRichTextShape()
	stripe.SetOffsetX(0).SetOffsetY(int64(4.7 * emuPerInch))
	stripe.SetWidth(pptSlideWidth).SetHeight(int64(0.1 * emuPerInch))
	stripe.SetFill(solidFill(scheme.Accent))

	// Centered title
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(pptMarginLeft).SetOffsetY(int64(1.9 * emuPerInch))
	titleShape.SetWidth(pptContentWidth).SetHeight(int64(1.2 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(pptFontTitle).SetBold(true).SetColor(ppt.NewColor("FF" + scheme.TextLight))
	alignCenter(titleShape.GetActiveParagraph())

	// One-line subtitle
	if subtitle != "" {
		display := subtitle
		if len([]rune(display)) > 90 {
			display = string([]rune(display)[:87]) + "..."
		}
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(pptMarginLeft).SetOffsetY(int64(3.2 * emuPerInch))
		subShape.SetWidth(pptContentWidth).SetHeight(int64(0.6 * emuPerInch))
		str := subShape.CreateTextRun(display)
		str.GetFont().SetSize(pptFontSubtitle).SetColor(ppt.NewColor("FF" + scheme.Accent))
		alignCenter(subShape.GetActiveParagraph())
	}

	s.addNotesStrip(slide, notes, scheme)
}

// addContentSlide renders the accent-bar layout with the planned bullet
// arrangement.
func (s *PPTExportService) addContentSlide(slide *ppt.Slide, data Slide, plan SlidePlan, scheme ColorScheme) {
	// Background wash
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(pptSlideWidth).SetHeight(pptSlideHeight)
	bg.SetFill(solidFill(scheme.Background))

	// Left accent bar, full height
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(0)
	bar.SetWidth(pptAccentBarWidth).SetHeight(pptSlideHeight)
	bar.SetFill(solidFill(scheme.Primary))

	// Heading
	headShape := slide.CreateRichTextShape()
	headShape.SetOffsetX(pptMarginLeft).SetOffsetY(int64(0.35 * emuPerInch))
	headShape.SetWidth(pptContentWidth).SetHeight(int64(0.7 * emuPerInch))
	hr := headShape.CreateTextRun(data.Title)
	hr.GetFont().SetSize(pptFontHeading).SetBold(true).SetColor(ppt.NewColor("FF" + scheme.Primary))

	// Underline rule below the heading
	rule := slide.CreateRichTextShape()
	rule.SetOffsetX(pptMarginLeft).SetOffsetY(int64(1.15 * emuPerInch))
	rule.SetWidth(int64(3.2 * emuPerInch)).SetHeight(int64(0.05 * emuPerInch))
	rule.SetFill(solidFill(scheme.Accent))

	if plan.Arrangement == VerticalCards {
		s.addCardRows(slide, data.Content, scheme)
	} else {
		s.addBulletBlock(slide, data.Content, scheme)
	}

	s.addNotesStrip(slide, data.Notes, scheme)
}

// addCardRows stacks each bullet as a numbered badge plus a card row.
func (s *PPTExportService) addCardRows(slide *ppt.Slide, bullets []string, scheme ColorScheme) {
	startY := 1.5
	cardHeight := 0.85
	spacing := 0.25

	for i, bullet := range bullets {
		y := startY + float64(i)*(cardHeight+spacing)

		badge := slide.CreateRichTextShape()
		badge.SetOffsetX(pptMarginLeft).SetOffsetY(int64((y + 0.18) * emuPerInch))
		badge.SetWidth(int64(0.5 * emuPerInch)).SetHeight(int64(0.5 * emuPerInch))
		badge.SetFill(solidFill(scheme.Secondary))
		btr := badge.CreateTextRun(strconv.Itoa(i + 1))
		btr.GetFont().SetSize(pptFontBadge).SetBold(true).SetColor(ppt.NewColor("FF" + scheme.TextLight))
		alignCenter(badge.GetActiveParagraph())

		card := slide.CreateRichTextShape()
		card.SetOffsetX(int64(1.45 * emuPerInch)).SetOffsetY(int64(y * emuPerInch))
		card.SetWidth(int64(7.8 * emuPerInch)).SetHeight(int64(cardHeight * emuPerInch))
		card.SetFill(solidFill(scheme.TextLight))
		ctr := card.CreateTextRun(bullet)
		ctr.GetFont().SetSize(pptFontCard).SetColor(ppt.NewColor("FF" + scheme.TextDark))
	}
}

// addBulletBlock renders all bullets in a single text block, one paragraph
// per bullet.
func (s *PPTExportService) addBulletBlock(slide *ppt.Slide, bullets []string, scheme ColorScheme) {
	block := slide.CreateRichTextShape()
	block.SetOffsetX(pptMarginLeft).SetOffsetY(int64(1.45 * emuPerInch))
	block.SetWidth(pptContentWidth).SetHeight(int64(3.5 * emuPerInch))

	for i, bullet := range bullets {
		if i > 0 {
			block.CreateParagraph()
		}
		tr := block.CreateTextRun("▸ " + bullet)
		tr.GetFont().SetSize(pptFontBody).SetColor(ppt.NewColor("FF" + scheme.TextDark))
	}
}

// addNotesStrip places speaker notes in a muted strip at the bottom of the
// slide. GoPPT's 2007 writer has no notes-slide part, so the notes travel
// on the slide itself.
func (s *PPTExportService) addNotesStrip(slide *ppt.Slide, notes string, scheme ColorScheme) {
	if notes == "" {
		return
	}
	display := notes
	if len([]rune(display)) > 180 {
		display = string([]rune(display)[:177]) + "..."
	}

	strip := slide.CreateRichTextShape()
	strip.SetOffsetX(pptMarginLeft).SetOffsetY(int64(5.25 * emuPerInch))
	strip.SetWidth(pptContentWidth).SetHeight(int64(0.3 * emuPerInch))
	tr := strip.CreateTextRun(i18n.T("slides.notes_label") + display)
	tr.GetFont().SetSize(pptFontNotes).SetColor(ppt.NewColor("FF" + colorMuted))
}
