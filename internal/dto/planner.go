package dto

import "github.com/ephanta/eva-app/internal/models"

// PlannerDayDTO is the three-slot meal tuple for one day.
type PlannerDayDTO struct {
	BreakfastRecipeID *uint64 `json:"fruehstueck_rezept_id"`
	LunchRecipeID     *uint64 `json:"mittagessen_rezept_id"`
	DinnerRecipeID    *uint64 `json:"abendessen_rezept_id"`
}

// ToPlanMap converts planner entries (already datum-ascending) into the
// day-keyed map the wire contract uses.
func ToPlanMap(entries []models.PlannerEntry) map[string]PlannerDayDTO {
	plan := make(map[string]PlannerDayDTO, len(entries))
	for _, entry := range entries {
		day := entry.Datum.UTC().Format("2006-01-02")
		plan[day] = PlannerDayDTO{
			BreakfastRecipeID: entry.BreakfastRecipeID,
			LunchRecipeID:     entry.LunchRecipeID,
			DinnerRecipeID:    entry.DinnerRecipeID,
		}
	}
	return plan
}
