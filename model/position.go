package model

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_GK      Position = "GK"
	POS_DEF     Position = "DEF"
	POS_MID     Position = "MID"
	POS_FWD     Position = "FWD"
)

// Positions is the fixed category order used when grouping players.
var Positions = []Position{POS_GK, POS_DEF, POS_MID, POS_FWD}

// PositionFromElementType maps the FPL element_type code to a Position.
func PositionFromElementType(code int) Position {
	switch code {
	case 1:
		return POS_GK
	case 2:
		return POS_DEF
	case 3:
		return POS_MID
	case 4:
		return POS_FWD
	default:
		return POS_UNKNOWN
	}
}
