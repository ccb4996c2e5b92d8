package domain

// Session counts the checks of one run.
// TestsPassed never exceeds TestsRun.
type Session struct {
	TestsRun    int
	TestsPassed int
}

// Record counts one executed check
func (s *Session) Record(passed bool) {
	s.TestsRun++
	if passed {
		s.TestsPassed++
	}
}

// AllPassed reports whether every executed check passed
func (s *Session) AllPassed() bool {
	return s.TestsPassed == s.TestsRun
}
