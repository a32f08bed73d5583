package fpl

import (
	"strings"

	"github.com/mww/fpl_analyzer/model"
)

type bootstrapResponse struct {
	Elements []fplElement `json:"elements"`
}

type fplElement struct {
	ID          int    `json:"id"`
	WebName     string `json:"web_name"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	ElementType int    `json:"element_type"`
	NowCost     int    `json:"now_cost"`
	TotalPoints int    `json:"total_points"`
}

func (e *fplElement) toPlayer() *model.Player {
	return &model.Player{
		ID:          e.ID,
		WebName:     displayName(e),
		Position:    model.PositionFromElementType(e.ElementType),
		Cost:        model.Cost(e.NowCost),
		TotalPoints: e.TotalPoints,
	}
}

// web_name is occasionally blank for newly added players.
func displayName(e *fplElement) string {
	if n := strings.TrimSpace(e.WebName); n != "" {
		return n
	}
	return strings.TrimSpace(e.FirstName + " " + e.SecondName)
}
