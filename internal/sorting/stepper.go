package sorting

import (
	"fmt"
	"math/rand"
	"time"
)

// StepResult tells the driver whether to schedule another step.
type StepResult int

const (
	Continuing StepResult = iota
	Done
)

func (r StepResult) String() string {
	if r == Done {
		return "done"
	}
	return "continuing"
}

// Frame is a copy of the stepper state handed to presenters.
type Frame struct {
	Values    []int     `json:"values"`
	Tags      []Tag     `json:"tags"`
	Algorithm Algorithm `json:"algorithm"`
	Cursor    int       `json:"cursor"`
	Steps     int       `json:"steps"`
	Done      bool      `json:"done"`
}

// Len returns the number of bars in the frame.
func (f Frame) Len() int { return len(f.Values) }

// Stepper owns the sequence, its coloring and the progress cursor of one run.
type Stepper struct {
	rng       *rand.Rand
	values    []int
	tags      []Tag
	algorithm Algorithm
	routine   routine
	cursor    int
	steps     int
	done      bool
}

// NewStepper creates an empty stepper. A nil rng is replaced by a
// time-seeded source.
func NewStepper(rng *rand.Rand) *Stepper {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Stepper{rng: rng}
}

// Create replaces the sequence with size fresh random values and resets the
// coloring and cursor.
func (s *Stepper) Create(size int) error {
	values, err := Generate(s.rng, size)
	if err != nil {
		return err
	}
	s.install(values)
	return nil
}

// Load installs an explicit sequence. Values are copied.
func (s *Stepper) Load(values []int) error {
	if err := ValidateValues(values); err != nil {
		return err
	}
	cp := make([]int, len(values))
	copy(cp, values)
	s.install(cp)
	return nil
}

func (s *Stepper) install(values []int) {
	s.values = values
	s.tags = make([]Tag, len(values))
	s.clearRun()
}

func (s *Stepper) clearRun() {
	s.algorithm, s.routine = UnknownAlgorithm, nil
	s.cursor, s.steps, s.done = 0, 0, false
}

// Begin selects the algorithm for a new run and rewinds the cursor to the
// algorithm's starting position. The sequence and coloring are kept.
func (s *Stepper) Begin(a Algorithm) error {
	r, ok := routines[a]
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidAlgorithm, a)
	}
	if len(s.values) == 0 {
		return ErrNoSequence
	}
	s.algorithm, s.routine = a, r
	s.cursor, s.steps = r.start(), 0
	s.done = r.finished(s.cursor, len(s.values))
	return nil
}

// Step performs one unit of work. It reports Done once the cursor has reached
// the algorithm's terminal condition; further calls are no-ops.
func (s *Stepper) Step() (StepResult, error) {
	if len(s.values) == 0 {
		return Done, ErrNoSequence
	}
	if s.routine == nil {
		return Done, fmt.Errorf("%w: no algorithm selected", ErrInvalidAlgorithm)
	}
	n := len(s.values)
	if s.routine.finished(s.cursor, n) {
		s.done = true
		return Done, nil
	}

	s.cursor = s.routine.advance(s.values, s.tags, s.cursor)
	s.steps++

	if s.routine.finished(s.cursor, n) {
		s.done = true
		return Done, nil
	}
	return Continuing, nil
}

// Reset clears the sequence, coloring and cursor.
func (s *Stepper) Reset() {
	s.values, s.tags = nil, nil
	s.clearRun()
}

func (s *Stepper) HasSequence() bool { return len(s.values) > 0 }
func (s *Stepper) Len() int { return len(s.values) }
func (s *Stepper) Algorithm() Algorithm { return s.algorithm }
func (s *Stepper) Cursor() int { return s.cursor }
func (s *Stepper) Finished() bool { return s.done }

// Frame returns a copy of the current state.
func (s *Stepper) Frame() Frame {
	f := Frame{
		Values:    make([]int, len(s.values)),
		Tags:      make([]Tag, len(s.tags)),
		Algorithm: s.algorithm,
		Cursor:    s.cursor,
		Steps:     s.steps,
		Done:      s.done,
	}
	copy(f.Values, s.values)
	copy(f.Tags, s.tags)
	return f
}
