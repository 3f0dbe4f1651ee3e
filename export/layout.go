package export

import "math/rand"

// SlideKind selects the visual template of a slide.
type SlideKind int

const (
	// TitleSlide is the full-bleed opening slide.
	TitleSlide SlideKind = iota
	// ContentSlide is the standard accent-bar layout.
	ContentSlide
)

// Arrangement selects how a content slide lays out its bullets.
type Arrangement int

const (
	// VerticalCards renders each bullet as a numbered badge plus card row.
	VerticalCards Arrangement = iota
	// BulletList renders a single text block, one paragraph per bullet.
	BulletList
)

// cardThreshold: up to this many bullets a slide still reads well as
// stacked cards; beyond it the cards shrink too much and a plain list wins.
const cardThreshold = 3

// SlidePlan is the deterministic visual plan for one slide.
type SlidePlan struct {
	Kind        SlideKind
	Arrangement Arrangement
}

// PlanSlide derives the layout for the slide at index with the given bullet
// count. Slide 0 is always the title slide; afterwards the arrangement
// follows the bullet count alone.
func PlanSlide(index, bulletCount int) SlidePlan {
	if index == 0 {
		return SlidePlan{Kind: TitleSlide, Arrangement: BulletList}
	}
	arr := VerticalCards
	if bulletCount > cardThreshold {
		arr = BulletList
	}
	return SlidePlan{Kind: ContentSlide, Arrangement: arr}
}

// SchemeName names one of the fixed presentation palettes.
type SchemeName string

const (
	SchemeOcean  SchemeName = "ocean"
	SchemeForest SchemeName = "forest"
	SchemeSunset SchemeName = "sunset"
	SchemeBerry  SchemeName = "berry"
	SchemeSlate  SchemeName = "slate"
)

// ColorScheme is a named palette applied uniformly to every slide of one
// export. Colors are RRGGBB hex without prefix.
type ColorScheme struct {
	Name       SchemeName
	Primary    string
	Secondary  string
	Accent     string
	Background string
	TextDark   string
	TextLight  string
}

// colorSchemes is the fixed palette set. Order matters: the random pick
// indexes into it.
var colorSchemes = []ColorScheme{
	{Name: SchemeOcean, Primary: "1E40AF", Secondary: "3B82F6", Accent: "60A5FA", Background: "F8FAFC", TextDark: "1E293B", TextLight: "FFFFFF"},
	{Name: SchemeForest, Primary: "166534", Secondary: "22C55E", Accent: "86EFAC", Background: "F7FDF9", TextDark: "14532D", TextLight: "FFFFFF"},
	{Name: SchemeSunset, Primary: "C2410C", Secondary: "F97316", Accent: "FDBA74", Background: "FFFBF5", TextDark: "431407", TextLight: "FFFFFF"},
	{Name: SchemeBerry, Primary: "86198F", Secondary: "D946EF", Accent: "F0ABFC", Background: "FDF8FE", TextDark: "4A044E", TextLight: "FFFFFF"},
	{Name: SchemeSlate, Primary: "334155", Secondary: "64748B", Accent: "94A3B8", Background: "F8FAFC", TextDark: "0F172A", TextLight: "FFFFFF"},
}

// SchemeByName resolves a scheme name, reporting whether it exists.
func SchemeByName(name SchemeName) (ColorScheme, bool) {
	for _, s := range colorSchemes {
		if s.Name == name {
			return s, true
		}
	}
	return ColorScheme{}, false
}

// SchemeNames lists the available scheme names.
func SchemeNames() []SchemeName {
	names := make([]SchemeName, len(colorSchemes))
	for i, s := range colorSchemes {
		names[i] = s.Name
	}
	return names
}

// RandomScheme picks one scheme for an export. The pick happens once at the
// orchestration boundary; everything below it is deterministic given the
// chosen scheme.
func RandomScheme() ColorScheme {
	return colorSchemes[rand.Intn(len(colorSchemes))]
}
