package animation

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	MinIntervalMs     = 1
	MaxIntervalMs     = 1000
	DefaultIntervalMs = 200
)

// Status is a frame plus the animation controls around it.
type Status struct {
	sorting.Frame
	Selected   sorting.Algorithm `json:"selected"`
	Running    bool              `json:"running"`
	IntervalMs int               `json:"interval_ms"`
}

// Session owns a Stepper and the on/off + interval animation state.
// All methods are safe for concurrent use. Methods that present a frame hold
// presentMu from the state change until the Presenter returns, so frames
// reach the Presenter in the order the changes happened.
type Session struct {
	presentMu  sync.Mutex // acquired before mu
	mu         sync.Mutex
	stepper    *sorting.Stepper
	algorithm  sorting.Algorithm
	running    bool
	intervalMs int
	presenter  Presenter
	log        zerolog.Logger
}

type Option func(*Session)

func WithPresenter(p Presenter) Option {
	return func(s *Session) { s.presenter = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithAlgorithm(a sorting.Algorithm) Option {
	return func(s *Session) {
		if a.Valid() {
			s.algorithm = a
		}
	}
}

// WithInterval sets the starting interval; out of range values are ignored.
func WithInterval(ms int) Option {
	return func(s *Session) {
		if validInterval(ms) == nil {
			s.intervalMs = ms
		}
	}
}

func NewSession(stepper *sorting.Stepper, opts ...Option) *Session {
	if stepper == nil {
		stepper = sorting.NewStepper(nil)
	}
	s := &Session{
		stepper:    stepper,
		algorithm:  sorting.SelectionSort,
		intervalMs: DefaultIntervalMs,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create generates a new random sequence and stops any running animation.
func (s *Session) Create(size int) error {
	s.presentMu.Lock()
	defer s.presentMu.Unlock()

	s.mu.Lock()
	s.running = false
	if err := s.stepper.Create(size); err != nil {
		s.mu.Unlock()
		s.log.Warn().Err(err).Int("size", size).Msg("create rejected")
		return err
	}
	f := s.stepper.Frame()
	s.mu.Unlock()

	s.log.Info().Int("size", size).Msg("sequence created")
	s.present(f)
	return nil
}

// CreateFromText validates free-text size input, then creates.
func (s *Session) CreateFromText(text string) error {
	size, err := sorting.ParseSize(text)
	if err != nil {
		s.log.Warn().Err(err).Str("input", text).Msg("size rejected")
		return err
	}
	return s.Create(size)
}

// Load installs an explicit sequence.
func (s *Session) Load(values []int) error {
	s.presentMu.Lock()
	defer s.presentMu.Unlock()

	s.mu.Lock()
	s.running = false
	if err := s.stepper.Load(values); err != nil {
		s.mu.Unlock()
		return err
	}
	f := s.stepper.Frame()
	s.mu.Unlock()

	s.log.Info().Ints("values", values).Msg("sequence loaded")
	s.present(f)
	return nil
}

// SelectAlgorithm parses and selects an algorithm for the next run.
func (s *Session) SelectAlgorithm(name string) error {
	a, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	return s.SetAlgorithm(a)
}

func (s *Session) SetAlgorithm(a sorting.Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %v", sorting.ErrInvalidAlgorithm, a)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAnimating
	}
	s.algorithm = a
	return nil
}

// Start begins a new run of the selected algorithm from its initial cursor.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stepper.Begin(s.algorithm); err != nil {
		return err
	}
	s.running = !s.stepper.Finished()
	s.log.Info().Stringer("algorithm", s.algorithm).Int("size", s.stepper.Len()).Msg("animation started")
	return nil
}

// Stop cancels the run. The next tick is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.log.Info().Int("cursor", s.stepper.Cursor()).Msg("animation stopped")
	}
	s.running = false
}

// SetInterval changes the tick interval; a running animation picks it up on
// its next tick.
func (s *Session) SetInterval(ms int) error {
	if err := validInterval(ms); err != nil {
		return err
	}
	s.mu.Lock()
	s.intervalMs = ms
	s.mu.Unlock()
	return nil
}

func validInterval(ms int) error {
	if ms < MinIntervalMs || ms > MaxIntervalMs {
		return fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidInterval, ms, MinIntervalMs, MaxIntervalMs)
	}
	return nil
}

// Reset stops the animation and clears the sequence. Idempotent.
func (s *Session) Reset() {
	s.presentMu.Lock()
	defer s.presentMu.Unlock()

	s.mu.Lock()
	s.running = false
	s.stepper.Reset()
	f := s.stepper.Frame()
	s.mu.Unlock()

	s.log.Info().Msg("session reset")
	s.present(f)
}

// Tick is one driver tick. It steps only while running and stops the run
// when the stepper reports Done. A stopped session reports Done so callers
// stop scheduling.
func (s *Session) Tick() (sorting.StepResult, error) {
	s.presentMu.Lock()
	defer s.presentMu.Unlock()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return sorting.Done, nil
	}
	res, err := s.stepper.Step()
	if err != nil || res == sorting.Done {
		s.running = false
	}
	f := s.stepper.Frame()
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("step failed")
		return res, err
	}
	if res == sorting.Done {
		s.log.Info().Stringer("algorithm", f.Algorithm).Int("steps", f.Steps).Msg("animation completed")
	}
	s.present(f)
	return res, nil
}

// StepOnce stops the timer and advances a single step. A new run is begun
// when none is active for the selected algorithm.
func (s *Session) StepOnce() (sorting.StepResult, error) {
	s.presentMu.Lock()
	defer s.presentMu.Unlock()

	s.mu.Lock()
	s.running = false
	if s.stepper.Algorithm() != s.algorithm {
		if err := s.stepper.Begin(s.algorithm); err != nil {
			s.mu.Unlock()
			return sorting.Done, err
		}
	}
	res, err := s.stepper.Step()
	f := s.stepper.Frame()
	s.mu.Unlock()

	if err != nil {
		return res, err
	}
	s.present(f)
	return res, nil
}

func (s *Session) Frame() sorting.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepper.Frame()
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Frame:      s.stepper.Frame(),
		Selected:   s.algorithm,
		Running:    s.running,
		IntervalMs: s.intervalMs,
	}
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Algorithm() sorting.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.algorithm
}

func (s *Session) IntervalMs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intervalMs
}

func (s *Session) Interval() time.Duration {
	return time.Duration(s.IntervalMs()) * time.Millisecond
}

func (s *Session) present(f sorting.Frame) {
	if s.presenter != nil {
		s.presenter.Present(f)
	}
}
