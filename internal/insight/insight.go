// Package insight derives rule-based observations from a single day's
// activities. Generation is pure and deterministic: no I/O, no clock, no
// state beyond the DayLog argument.
package insight

import (
	"fmt"
	"math"

	"github.com/tymora/tymora/internal/model"
	"github.com/tymora/tymora/internal/timeutil"
)

// Category groups insights for display.
type Category string

const (
	CategoryTimeAllocation   Category = "Time Allocation"
	CategoryContextSwitching Category = "Context Switching"
	CategoryEnergy           Category = "Energy"
	CategoryUntracked        Category = "Untracked"
)

// Type grades an insight's tone.
type Type string

const (
	TypeInfo     Type = "info"
	TypeWarning  Type = "warning"
	TypePositive Type = "positive"
)

// Insight is one observation about a day.
type Insight struct {
	ID          string
	Category    Category
	Title       string
	Description string
	Type        Type
}

// Rule thresholds. Rule order below is a de facto priority order because
// the result is capped at MaxInsights.
const (
	MaxInsights           = 5
	dominanceThresholdPct = 40
	priorityMinutes       = 30
	switchingThreshold    = 12
	lateCutoffMinutes     = 20 * 60
	untrackedThreshold    = 600
)

// Generate evaluates the rules against one day and returns at most
// MaxInsights insights in rule order. A day with no activities yields
// none at all.
func Generate(day model.DayLog) []Insight {
	if len(day.Activities) == 0 {
		return nil
	}

	// Total and per-category minutes, computed once. Activities without a
	// duration count as zero. Categories keep first-appearance order so
	// the output is deterministic.
	var total int
	minutes := map[string]int{}
	var order []string
	for _, act := range day.Activities {
		d := 0
		if act.DurationMinutes != nil {
			d = *act.DurationMinutes
		}
		total += d
		if _, seen := minutes[act.Category]; !seen {
			order = append(order, act.Category)
		}
		minutes[act.Category] += d
	}

	var insights []Insight

	// Rule 1: category dominance above 40% of tracked time.
	if total > 0 {
		for _, cat := range order {
			pct := float64(minutes[cat]) / float64(total) * 100
			if pct > dominanceThresholdPct {
				insights = append(insights, Insight{
					ID:       "dominance-" + cat,
					Category: CategoryTimeAllocation,
					Title:    fmt.Sprintf("%s Dominated Your Day", cat),
					Description: fmt.Sprintf(
						"%s activities took up %d%% of your tracked time. Consider balancing if this wasn't intended.",
						cat, int(math.Round(pct))),
					Type: TypeInfo,
				})
			}
		}
	}

	// Rule 2: under 30 minutes on both Learning and Health.
	if minutes["Learning"] < priorityMinutes && minutes["Health"] < priorityMinutes {
		insights = append(insights, Insight{
			ID:       "missing-priority",
			Category: CategoryTimeAllocation,
			Title:    "Missing Priority Time",
			Description: "You spent less than 30 minutes on Learning or Health today. " +
				"Even 15 minutes can help maintain consistency.",
			Type: TypeWarning,
		})
	}

	// Rule 3: more than 12 activities in one day.
	if len(day.Activities) > switchingThreshold {
		insights = append(insights, Insight{
			ID:       "context-switching",
			Category: CategoryContextSwitching,
			Title:    "High Context Switching",
			Description: fmt.Sprintf(
				"You logged %d activities today. Grouping similar tasks might improve focus.",
				len(day.Activities)),
			Type: TypeWarning,
		})
	}

	// Rule 4: any high-energy activity starting strictly after 20:00.
	// One insight at most, however many qualify.
	for _, act := range day.Activities {
		if act.EnergyLevel != model.EnergyHigh {
			continue
		}
		start, err := timeutil.ParseClock(act.StartTime)
		if err != nil || start <= lateCutoffMinutes {
			continue
		}
		insights = append(insights, Insight{
			ID:       "late-effort",
			Category: CategoryEnergy,
			Title:    "Late High-Effort Tasks",
			Description: "You handled demanding tasks after 8 PM. " +
				"This might affect your rest quality.",
			Type: TypeWarning,
		})
		break
	}

	// Rule 5: less than 10 hours tracked in total.
	if total < untrackedThreshold {
		insights = append(insights, Insight{
			ID:       "untracked-time",
			Category: CategoryUntracked,
			Title:    "Significant Untracked Time",
			Description: fmt.Sprintf(
				"You only tracked %d hours today. Logging gaps can reveal hidden time sinks.",
				total/60),
			Type: TypeInfo,
		})
	}

	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}
