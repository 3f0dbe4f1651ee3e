package export

import "testing"

func TestPlanSlide(t *testing.T) {
	cases := []struct {
		index, bullets  int
		wantKind        SlideKind
		wantArrangement Arrangement
	}{
		{0, 0, TitleSlide, BulletList},
		{0, 10, TitleSlide, BulletList},
		{1, 0, ContentSlide, VerticalCards},
		{1, 2, ContentSlide, VerticalCards},
		{2, 3, ContentSlide, VerticalCards},
		{3, 4, ContentSlide, BulletList},
		{5, 9, ContentSlide, BulletList},
	}
	for _, c := range cases {
		plan := PlanSlide(c.index, c.bullets)
		if plan.Kind != c.wantKind || plan.Arrangement != c.wantArrangement {
			t.Errorf("PlanSlide(%d, %d) = %+v, want kind %v arrangement %v",
				c.index, c.bullets, plan, c.wantKind, c.wantArrangement)
		}
	}
}

func TestSchemeByName(t *testing.T) {
	for _, name := range SchemeNames() {
		scheme, ok := SchemeByName(name)
		if !ok {
			t.Errorf("SchemeByName(%q) not found", name)
			continue
		}
		if scheme.Name != name {
			t.Errorf("SchemeByName(%q) returned scheme named %q", name, scheme.Name)
		}
		for field, hex := range map[string]string{
			"primary": scheme.Primary, "secondary": scheme.Secondary,
			"accent": scheme.Accent, "background": scheme.Background,
			"textDark": scheme.TextDark, "textLight": scheme.TextLight,
		} {
			if len(hex) != 6 {
				t.Errorf("scheme %q field %s = %q, want 6 hex digits", name, field, hex)
			}
		}
	}

	if _, ok := SchemeByName("neon"); ok {
		t.Error("SchemeByName accepted unknown name")
	}
}

func TestRandomSchemeIsMember(t *testing.T) {
	known := make(map[SchemeName]bool)
	for _, name := range SchemeNames() {
		known[name] = true
	}
	for i := 0; i < 50; i++ {
		if scheme := RandomScheme(); !known[scheme.Name] {
			t.Fatalf("RandomScheme returned unknown scheme %q", scheme.Name)
		}
	}
}
