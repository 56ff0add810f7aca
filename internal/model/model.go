package model

// EnergyLevel grades how demanding an activity felt.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// LoggedVia records how an activity entered the log. It is a provenance
// marker for display only and never affects any computation.
type LoggedVia string

const (
	ViaManual LoggedVia = "manual"
	ViaTimer  LoggedVia = "timer"
)

// Activity is one logged or in-progress interval. Times are wall-clock
// HH:MM strings with no date component; a nil EndTime means the activity
// is still running and must never be persisted inside a DayLog.
type Activity struct {
	ID              string      `json:"id"`
	StartTime       string      `json:"start_time"`
	EndTime         *string     `json:"end_time,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	Category        string      `json:"category"`
	SubCategory     *string     `json:"sub_category,omitempty"`
	Name            string      `json:"activity"`
	Tags            []string    `json:"tags,omitempty"`
	EnergyLevel     EnergyLevel `json:"energy_level,omitempty"`
	Mood            string      `json:"mood,omitempty"`
	LoggedVia       LoggedVia   `json:"logged_via,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
}

// Running reports whether the activity has not been stopped yet.
func (a Activity) Running() bool {
	return a.EndTime == nil
}

// DayLog is one calendar day's container. Activities keep append order;
// consumers needing chronological order must sort by start time themselves.
type DayLog struct {
	Date         string     `json:"date"`
	DayStartTime *string    `json:"day_start_time,omitempty"`
	Activities   []Activity `json:"activities"`
}

// DefaultRetentionDays is assigned when a stored document predates the
// retention setting.
const DefaultRetentionDays = 2

// Retention bounds for the history retention setting, inclusive.
const (
	MinRetentionDays = 1
	MaxRetentionDays = 7
)

// TymOraData is the whole durable document, one per installation. Dates
// are canonical YYYY-MM-DD strings, so lexicographic order is
// chronological order.
type TymOraData struct {
	Timezone             string   `json:"timezone"`
	HistoryRetentionDays int      `json:"historyRetentionDays"`
	Days                 []DayLog `json:"days"`
}

// Day returns the DayLog for date and its index, or -1 if absent.
func (d *TymOraData) Day(date string) (*DayLog, int) {
	for i := range d.Days {
		if d.Days[i].Date == date {
			return &d.Days[i], i
		}
	}
	return nil, -1
}

// FindActivity locates an activity by id across all days. Ids are unique
// document-wide, not per day.
func (d *TymOraData) FindActivity(id string) (day *DayLog, index int) {
	for i := range d.Days {
		for j := range d.Days[i].Activities {
			if d.Days[i].Activities[j].ID == id {
				return &d.Days[i], j
			}
		}
	}
	return nil, -1
}
