package execution

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"apismoke/internal/config"
	"apismoke/internal/discovery"
	"apismoke/internal/domain"
	"apismoke/internal/ui"
)

// ErrChecksFailed means at least one executed check did not pass
var ErrChecksFailed = errors.New("some checks failed")

// Suite runs root, create and list checks in that order
type Suite struct {
	config   *config.Config
	runner   *Runner
	tester   *Tester
	reporter *ui.Reporter
	filter   *discovery.Filter
	progress *ui.ProgressBar
	now      func() time.Time
}

// NewSuite creates a new Suite
func NewSuite(cfg *config.Config, runner *Runner, reporter *ui.Reporter, filter *discovery.Filter) *Suite {
	return &Suite{
		config:   cfg,
		runner:   runner,
		tester:   NewTester(runner),
		reporter: reporter,
		filter:   filter,
		now:      time.Now,
	}
}

// SetProgress sets the progress bar updated after each check
func (s *Suite) SetProgress(progress *ui.ProgressBar) {
	s.progress = progress
}

// SetClock replaces the clock used for the client name and timings
func (s *Suite) SetClock(now func() time.Time) {
	s.now = now
}

// ClientName builds the unique client name of a run started at t
func (s *Suite) ClientName(t time.Time) string {
	return s.config.ClientPrefix + t.Format("150405")
}

// Checks returns the checks the suite will execute, after filtering
func (s *Suite) Checks() []domain.Check {
	all := []domain.Check{RootCheck(), CreateCheck(s.ClientName(s.now())), ListCheck()}

	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	keep := make(map[string]bool)
	for _, n := range s.filter.FilterByName(names, s.config.Flags.NameFilter) {
		keep[n] = true
	}

	var selected []domain.Check
	for _, c := range all {
		if keep[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected
}

// Run executes the selected checks. A failed check never stops the next one.
func (s *Suite) Run(ctx context.Context) *domain.RunReport {
	start := s.now()
	clientName := s.ClientName(start)

	selected := make(map[string]bool)
	for _, c := range s.Checks() {
		selected[c.Name] = true
	}

	s.reporter.Start(s.config.BaseURL)

	steps := []struct {
		name string
		run  func()
	}{
		{RootCheckName, func() {
			if !s.tester.TestRootEndpoint(ctx) {
				s.reporter.Warn("Root endpoint failed")
			}
		}},
		{CreateCheckName, func() {
			if _, ok := s.tester.TestCreateStatusCheck(ctx, clientName); !ok {
				s.reporter.Warn("Status check creation failed")
			}
		}},
		{ListCheckName, func() {
			ok, body := s.tester.TestGetStatusChecks(ctx)
			if !ok {
				s.reporter.Warn("Status check retrieval failed")
				return
			}
			if n, isList := body.Len(); isList {
				s.reporter.Info("Retrieved %d status checks", n)
			} else {
				s.reporter.Info("Retrieved unknown status checks")
			}
		}},
	}

	for _, step := range steps {
		if !selected[step.name] {
			continue
		}
		step.run()
		if s.progress != nil {
			session := s.runner.Session()
			s.progress.Update(session.TestsPassed, session.TestsRun-session.TestsPassed)
		}
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	session := s.runner.Session()
	s.reporter.Summary(session.TestsPassed, session.TestsRun)

	duration := s.now().Sub(start)
	return &domain.RunReport{
		Meta: domain.RunMeta{
			RunID:           uuid.NewString(),
			BaseURL:         s.config.BaseURL,
			ClientName:      clientName,
			TestsRun:        session.TestsRun,
			TestsPassed:     session.TestsPassed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       start.Format(time.RFC3339),
		},
		Details: s.runner.Results(),
	}
}
