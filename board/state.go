package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate
)

func stateCheck(s Side) State {
	if s == SideWhite {
		return StateCheckWhite
	}
	return StateCheckBlack
}

func stateCheckmate(s Side) State {
	if s == SideWhite {
		return StateCheckmateWhite
	}
	return StateCheckmateBlack
}

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	return s == StateStalemate
}

// Winner returns the side that won, or SideUnknown when the game is running or drawn.
func (s State) Winner() Side {
	switch s {
	case StateCheckmateWhite:
		return SideBlack
	case StateCheckmateBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	default:
		return ""
	}
}

// Describe returns a short human readable status line.
func (s State) Describe() string {
	switch s {
	case StateRunning:
		return "in progress"
	case StateCheckWhite:
		return "White is in check"
	case StateCheckBlack:
		return "Black is in check"
	case StateCheckmateWhite:
		return "checkmate, Black wins"
	case StateCheckmateBlack:
		return "checkmate, White wins"
	case StateStalemate:
		return "stalemate, draw"
	default:
		return "unknown"
	}
}
