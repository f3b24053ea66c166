package components

import (
	"math/rand"

	cfg "github.com/automoto/kokaton/config"
	"github.com/yohamta/donburi"
)

// SessionData is the per-battle bookkeeping singleton.
type SessionData struct {
	Tick    int
	Outcome cfg.Outcome
	Seed    int64
	Rand    *rand.Rand
}

// Over reports whether the session has reached a terminal outcome.
func (s *SessionData) Over() bool {
	return s.Outcome != cfg.OutcomeNone
}

// End records the first terminal outcome; later calls are ignored.
func (s *SessionData) End(o cfg.Outcome) {
	if s.Outcome == cfg.OutcomeNone {
		s.Outcome = o
	}
}

var Session = donburi.NewComponentType[SessionData]()
