package model_test

import (
	"testing"

	"github.com/tymora/tymora/internal/model"
)

func TestCategoryLookupsFailSoft(t *testing.T) {
	if got := model.CategoryByID("learning"); got.Label != "Learning" {
		t.Errorf("CategoryByID(learning) = %q, want Learning", got.Label)
	}
	if got := model.CategoryByLabel("Health"); got.ID != "health" {
		t.Errorf("CategoryByLabel(Health) = %q, want health", got.ID)
	}
	// Labels from an older or newer vocabulary must not fail.
	if got := model.CategoryByLabel("Gardening"); got.ID != model.DefaultCategory.ID {
		t.Errorf("unknown label resolved to %q, want default %q", got.ID, model.DefaultCategory.ID)
	}
	if got := model.CategoryByID(""); got.ID != model.DefaultCategory.ID {
		t.Errorf("empty id resolved to %q, want default %q", got.ID, model.DefaultCategory.ID)
	}
}

func TestThemeLookupFailSoft(t *testing.T) {
	if got := model.ThemeByID("rose"); got.Label != "Passion" {
		t.Errorf("ThemeByID(rose) = %q, want Passion", got.Label)
	}
	if got := model.ThemeByID("amber"); got.ID != model.DefaultTheme.ID {
		t.Errorf("unknown theme resolved to %q, want default %q", got.ID, model.DefaultTheme.ID)
	}
}

func TestMoodEmoji(t *testing.T) {
	tests := []struct {
		mood string
		want string
	}{
		{"focused", "🧠"},
		{"calm", "😌"},
		{"busy", "⚡"},
		{"tired", "😴"},
		{"happy", "😊"},
		{"melancholic", "😐"},
		{"", "😐"},
	}
	for _, tt := range tests {
		if got := model.MoodEmoji(tt.mood); got != tt.want {
			t.Errorf("MoodEmoji(%q) = %q, want %q", tt.mood, got, tt.want)
		}
	}
}

func TestFindActivityAcrossDays(t *testing.T) {
	doc := model.TymOraData{
		Days: []model.DayLog{
			{Date: "2026-03-09", Activities: []model.Activity{{ID: "a1"}, {ID: "a2"}}},
			{Date: "2026-03-10", Activities: []model.Activity{{ID: "b1"}}},
		},
	}

	day, idx := doc.FindActivity("b1")
	if day == nil || day.Date != "2026-03-10" || idx != 0 {
		t.Errorf("FindActivity(b1) = (%v, %d), want day 2026-03-10 index 0", day, idx)
	}

	day, idx = doc.FindActivity("missing")
	if day != nil || idx != -1 {
		t.Errorf("FindActivity(missing) = (%v, %d), want (nil, -1)", day, idx)
	}
}
