package testutils

import "github.com/mww/fpl_analyzer/model"

var (
	Keeper     = model.Player{ID: 1, WebName: "Martinez", Position: model.POS_GK, Cost: 55, TotalPoints: 100}
	Defender   = model.Player{ID: 2, WebName: "Cresswell", Position: model.POS_DEF, Cost: 50, TotalPoints: 80}
	Midfielder = model.Player{ID: 3, WebName: "Son", Position: model.POS_MID, Cost: 90, TotalPoints: 120}
	Forward    = model.Player{ID: 4, WebName: "Bamford", Position: model.POS_FWD, Cost: 70, TotalPoints: 60}
)

// OnePerPosition returns a fresh slice with one player in each position.
func OnePerPosition() []model.Player {
	return []model.Player{Keeper, Defender, Midfielder, Forward}
}

// Squad returns a small roster with several players per position and a few
// tied scores.
func Squad() []model.Player {
	return []model.Player{
		{ID: 10, WebName: "Raya", Position: model.POS_GK, Cost: 55, TotalPoints: 150},
		{ID: 11, WebName: "Pickford", Position: model.POS_GK, Cost: 50, TotalPoints: 140},
		{ID: 12, WebName: "Sels", Position: model.POS_GK, Cost: 45, TotalPoints: 150},
		{ID: 20, WebName: "Gabriel", Position: model.POS_DEF, Cost: 60, TotalPoints: 170},
		{ID: 21, WebName: "Saliba", Position: model.POS_DEF, Cost: 60, TotalPoints: 160},
		{ID: 22, WebName: "Robinson", Position: model.POS_DEF, Cost: 45, TotalPoints: 120},
		{ID: 30, WebName: "M.Salah", Position: model.POS_MID, Cost: 130, TotalPoints: 344},
		{ID: 31, WebName: "Palmer", Position: model.POS_MID, Cost: 105, TotalPoints: 220},
		{ID: 32, WebName: "Mbeumo", Position: model.POS_MID, Cost: 75, TotalPoints: 236},
		{ID: 40, WebName: "Isak", Position: model.POS_FWD, Cost: 95, TotalPoints: 211},
		{ID: 41, WebName: "Wood", Position: model.POS_FWD, Cost: 65, TotalPoints: 200},
	}
}
