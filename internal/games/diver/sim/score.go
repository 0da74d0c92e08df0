package sim

// ScoreState is the session's bookkeeping. Score and Pearls only grow;
// Lives only shrinks and never goes below zero.
type ScoreState struct {
	Score  int
	Pearls int
	Lives  int
}

// AddScore awards points. Non-positive amounts are ignored.
func (s *ScoreState) AddScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// IncrementPearls counts one collected pearl.
func (s *ScoreState) IncrementPearls() {
	s.Pearls++
}

// LoseLife removes one life. It returns true only for the decrement that
// reaches zero; once at zero further calls change nothing and return false.
func (s *ScoreState) LoseLife() bool {
	if s.Lives <= 0 {
		s.Lives = 0
		return false
	}
	s.Lives--
	return s.Lives == 0
}
