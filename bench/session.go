package bench

import (
	"github.com/google/uuid"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
)

// Session runs every case of a benchmark against one environment. A session
// runs once, the environment is closed when it ends whatever the outcome
type Session struct {
	ID       string
	Option   Option
	Cases    []workload.Case
	OnState  func(state State)
	env      Environment
	reporter *Reporter
	state    State
}

// NewSession create a session, it takes the ownership of env
func NewSession(env Environment, reporter *Reporter, option Option, cases ...workload.Case) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Option:   option,
		Cases:    cases,
		env:      env,
		reporter: reporter,
		state:    StateInit,
	}
}

// State the current state
func (s *Session) State() State {
	return s.state
}

// Run the session
func (s *Session) Run() (summaries []*Summary, err error) {
	if s.state == StateDone {
		return nil, ErrSessionDone
	}

	defer func() {
		s.transit(StateDone)
		if cerr := s.env.Close(); cerr != nil {
			log.With(log.F{"session": s.ID}).Error("[bench] close the environment: %s", cerr.Error())
			if err == nil {
				err = classify(ErrSetup, cerr)
			}
		}
	}()

	if err := s.Option.Check(); err != nil {
		return nil, err
	}

	for i, c := range s.Cases {
		summary, err := s.runCase(i, c)
		if err != nil {
			log.With(log.F{"session": s.ID, "case": c.Title}).Error("[bench] %s", err.Error())
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := s.reporter.Flush(); err != nil {
		return nil, classify(ErrSetup, err)
	}
	return summaries, nil
}

func (s *Session) runCase(index int, c workload.Case) (*Summary, error) {
	s.transit(StateInit)
	pair, err := s.env.Prepare(c.Workload)
	if err != nil {
		return nil, classify(ErrCompile, err)
	}

	s.transit(StateReady)
	s.reporter.Case(index, c.Title)
	log.With(log.F{"session": s.ID, "case": c.Title}).Trace("[bench] %d runs x %d iterations", s.Option.Runs, s.Option.Iterations)

	runs := make([]RunPair, 0, s.Option.Runs)
	for run := 1; run <= s.Option.Runs; run++ {
		s.transit(StateRunBaseline)
		baseline, err := pair.Baseline.Measure(s.Option.Iterations)
		if err != nil {
			return nil, classify(ErrExecute, err)
		}

		s.transit(StateRunCandidate)
		candidate, err := pair.Candidate.Measure(s.Option.Iterations)
		if err != nil {
			return nil, classify(ErrExecute, err)
		}

		s.transit(StateReportRun)
		result := RunPair{
			Run:       run,
			Baseline:  RunResult{Run: run, Strategy: pair.Baseline.Name(), Duration: baseline},
			Candidate: RunResult{Run: run, Strategy: pair.Candidate.Name(), Duration: candidate},
		}
		runs = append(runs, result)
		s.reporter.Run(result, pair)
	}

	s.transit(StateAggregate)
	summary, err := Aggregate(c.Title, pair, runs)
	if err != nil {
		return nil, err
	}

	s.transit(StateReportSummary)
	s.reporter.Summary(summary)
	return summary, nil
}

func (s *Session) transit(state State) {
	s.state = state
	if s.OnState != nil {
		s.OnState(state)
	}
}

// String the state name
func (state State) String() string {
	switch state {
	case StateInit:
		return "init"
	case StateReady:
		return "ready"
	case StateRunBaseline:
		return "run-baseline"
	case StateRunCandidate:
		return "run-candidate"
	case StateReportRun:
		return "report-run"
	case StateAggregate:
		return "aggregate"
	case StateReportSummary:
		return "report-summary"
	case StateDone:
		return "done"
	}
	return "unknown"
}
