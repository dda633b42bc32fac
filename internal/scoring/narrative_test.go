package scoring

import "testing"

func TestNarrativeFor_AllLevelsBothLanguages(t *testing.T) {
	for _, lang := range Languages() {
		for level := 1; level <= 5; level++ {
			n, ok := NarrativeFor(level, lang)
			if !ok {
				t.Fatalf("NarrativeFor(%d, %q) missing", level, lang)
			}
			if n.Title == "" || n.Description == "" {
				t.Errorf("NarrativeFor(%d, %q) has empty title or description", level, lang)
			}
			if len(n.Characteristics) == 0 {
				t.Errorf("NarrativeFor(%d, %q) has no characteristics", level, lang)
			}
			if len(n.NextSteps) == 0 {
				t.Errorf("NarrativeFor(%d, %q) has no next steps", level, lang)
			}
		}
	}
}

func TestNarrativeFor_UnknownLanguageFallsBack(t *testing.T) {
	got, ok := NarrativeFor(3, "de")
	if !ok {
		t.Fatal("expected fallback narrative for unknown language")
	}
	want, _ := NarrativeFor(3, DefaultLang)
	if got.Title != want.Title {
		t.Errorf("fallback title = %q, want %q", got.Title, want.Title)
	}
}

func TestNarrativeFor_OutOfRangeLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"Level zero", 0},
		{"Level six", 6},
		{"Negative level", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NarrativeFor(tt.level, LangEN); ok {
				t.Errorf("NarrativeFor(%d) ok = true, want false", tt.level)
			}
		})
	}
}
