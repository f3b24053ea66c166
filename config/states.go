package config

// StateID identifies the current state of an enemy state machine.
type StateID int

const (
	StateNone StateID = iota

	// Flying enemy
	StateDescending
	StatePatrolling

	// Boss (shares StateDescending)
	StateMoving
	StateAttacking
)

func (s StateID) String() string {
	switch s {
	case StateDescending:
		return "descending"
	case StatePatrolling:
		return "patrolling"
	case StateMoving:
		return "moving"
	case StateAttacking:
		return "attacking"
	default:
		return "none"
	}
}

// Phase is the top-level screen the game is showing.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Outcome is how a battle session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomePlayerDied
	OutcomeBossDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomePlayerDied:
		return "player_died"
	case OutcomeBossDefeated:
		return "boss_defeated"
	}
	return "none"
}
