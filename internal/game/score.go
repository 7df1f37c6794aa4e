package game

// Score tracks the current run and the best run of this process.
// Best is a running maximum: it never decreases and is at least Current
// after every update.
type Score struct {
	Current int
	Best    int
}

// Add credits n passed obstacles to the current run.
func (s *Score) Add(n int) {
	if n <= 0 {
		return
	}
	s.Current += n
	s.Commit()
}

// Commit folds the current run into Best.
func (s *Score) Commit() {
	if s.Current > s.Best {
		s.Best = s.Current
	}
}

// ResetCurrent starts a new run, keeping Best.
func (s *Score) ResetCurrent() {
	s.Current = 0
}
