package sim

import "testing"

func TestScoreState(t *testing.T) {
	s := ScoreState{Lives: 2}

	s.AddScore(10)
	s.AddScore(0)
	s.AddScore(-5)
	if s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}

	s.IncrementPearls()
	if s.Pearls != 1 {
		t.Errorf("Pearls = %d, expected 1", s.Pearls)
	}

	if s.LoseLife() {
		t.Error("LoseLife() at 2 lives reported depletion")
	}
	if !s.LoseLife() {
		t.Error("LoseLife() reaching 0 should report depletion")
	}
	for range 3 {
		if s.LoseLife() {
			t.Error("LoseLife() at 0 should not report depletion again")
		}
	}
	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
}
