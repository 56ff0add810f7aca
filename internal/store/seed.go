package store

import "github.com/tymora/tymora/internal/model"

func ptr[T any](v T) *T { return &v }

// seedData builds the bundled example dataset used to initialize an empty
// store. Activities are created without ids so the regular migration path
// assigns them, the same as for imported legacy data.
func seedData(today string) *model.TymOraData {
	return &model.TymOraData{
		Timezone: "UTC",
		Days: []model.DayLog{
			{
				Date:         today,
				DayStartTime: ptr("08:30"),
				Activities: []model.Activity{
					{
						StartTime:       "08:30",
						EndTime:         ptr("09:15"),
						DurationMinutes: ptr(45),
						Category:        "Health",
						Name:            "Morning run",
						EnergyLevel:     model.EnergyHigh,
						Mood:            "happy",
						LoggedVia:       model.ViaManual,
					},
					{
						StartTime:       "09:30",
						EndTime:         ptr("12:00"),
						DurationMinutes: ptr(150),
						Category:        "Work",
						SubCategory:     ptr("Deep work"),
						Name:            "Quarterly planning",
						Tags:            []string{"planning"},
						EnergyLevel:     model.EnergyMedium,
						Mood:            "focused",
						LoggedVia:       model.ViaManual,
					},
					{
						StartTime:       "13:00",
						EndTime:         ptr("13:40"),
						DurationMinutes: ptr(40),
						Category:        "Learning",
						Name:            "Language practice",
						EnergyLevel:     model.EnergyLow,
						Mood:            "calm",
						LoggedVia:       model.ViaTimer,
					},
				},
			},
		},
	}
}
