package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cost is a player's price in tenths of a million, as the FPL API reports it.
type Cost int

// Millions normalizes the cost to whole currency units (millions).
func (c Cost) Millions() decimal.Decimal {
	return decimal.New(int64(c), -1)
}

func (c Cost) String() string {
	return fmt.Sprintf("£%sm", c.Millions().StringFixed(1))
}

type Player struct {
	ID          int
	WebName     string
	Position    Position
	Cost        Cost
	TotalPoints int
}

// FilterByPosition returns the players in the given position, keeping the input order.
func FilterByPosition(players []Player, pos Position) []Player {
	result := make([]Player, 0, len(players)/len(Positions)+1)
	for _, p := range players {
		if p.Position == pos {
			result = append(result, p)
		}
	}
	return result
}
