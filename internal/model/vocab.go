package model

// Category is one entry of the closed-but-extensible category vocabulary.
// Records store the label as free text, so lookups against this table must
// tolerate labels the current vocabulary no longer knows.
type Category struct {
	ID    string
	Label string
	Icon  string
	Color string
}

// Categories is the built-in vocabulary, in display order.
var Categories = []Category{
	{ID: "work", Label: "Work", Icon: "Briefcase", Color: "blue"},
	{ID: "personal", Label: "Personal", Icon: "User", Color: "green"},
	{ID: "home", Label: "Home", Icon: "Home", Color: "orange"},
	{ID: "learning", Label: "Learning", Icon: "BookOpen", Color: "purple"},
	{ID: "health", Label: "Health", Icon: "Activity", Color: "red"},
	{ID: "other", Label: "Other", Icon: "MoreHorizontal", Color: "slate"},
}

// DefaultCategory is the fallback for unknown ids and labels.
var DefaultCategory = Categories[len(Categories)-1]

// CategoryByID returns the category with the given id, falling back to
// DefaultCategory so stored records survive vocabulary edits.
func CategoryByID(id string) Category {
	for _, c := range Categories {
		if c.ID == id {
			return c
		}
	}
	return DefaultCategory
}

// CategoryByLabel returns the category with the given display label,
// falling back to DefaultCategory.
func CategoryByLabel(label string) Category {
	for _, c := range Categories {
		if c.Label == label {
			return c
		}
	}
	return DefaultCategory
}

// Theme is a visual preset. Themes have no behavioral effect on data.
type Theme struct {
	ID        string
	Label     string
	Primary   string
	Secondary string
	Text      string
	Ring      string
}

// Themes is the closed set of theme definitions.
var Themes = []Theme{
	{ID: "blue", Label: "Ocean", Primary: "blue-600", Secondary: "blue-50", Text: "blue-600", Ring: "blue-500"},
	{ID: "violet", Label: "Royal", Primary: "violet-600", Secondary: "violet-50", Text: "violet-600", Ring: "violet-500"},
	{ID: "emerald", Label: "Nature", Primary: "emerald-600", Secondary: "emerald-50", Text: "emerald-600", Ring: "emerald-500"},
	{ID: "rose", Label: "Passion", Primary: "rose-600", Secondary: "rose-50", Text: "rose-600", Ring: "rose-500"},
	{ID: "pink", Label: "Sunset", Primary: "pink-600", Secondary: "pink-50", Text: "pink-600", Ring: "pink-500"},
}

// DefaultTheme is used when no theme is stored or the stored id is unknown.
var DefaultTheme = Themes[0]

// ThemeByID returns the theme with the given id, falling back to
// DefaultTheme.
func ThemeByID(id string) Theme {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return DefaultTheme
}

// MoodEmoji maps the well-known mood labels to a display glyph. Unknown
// moods degrade to a neutral face.
func MoodEmoji(mood string) string {
	switch mood {
	case "focused":
		return "🧠"
	case "calm":
		return "😌"
	case "busy":
		return "⚡"
	case "tired":
		return "😴"
	case "happy":
		return "😊"
	default:
		return "😐"
	}
}
