package animation

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/sorting"
)

type recorder struct {
	frames []sorting.Frame
}

func (r *recorder) Present(f sorting.Frame) { r.frames = append(r.frames, f) }

func newTestSession(opts ...Option) (*Session, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithPresenter(rec)}, opts...)
	return NewSession(sorting.NewStepper(rand.New(rand.NewSource(3))), opts...), rec
}

func TestSessionDefaults(t *testing.T) {
	s, _ := newTestSession()
	assert.Equal(t, sorting.SelectionSort, s.Algorithm())
	assert.Equal(t, DefaultIntervalMs, s.IntervalMs())
	assert.False(t, s.Running())
}

func TestSessionCreatePresents(t *testing.T) {
	s, rec := newTestSession()
	require.NoError(t, s.Create(5))
	require.Len(t, rec.frames, 1)
	assert.Len(t, rec.frames[0].Values, 5)
	assert.Len(t, rec.frames[0].Tags, 5)
}

func TestSessionCreateFromText(t *testing.T) {
	s, rec := newTestSession()

	assert.ErrorIs(t, s.CreateFromText("abc"), sorting.ErrInvalidInput)
	assert.ErrorIs(t, s.CreateFromText(""), sorting.ErrInvalidInput)
	assert.ErrorIs(t, s.CreateFromText("0"), sorting.ErrInvalidSize)
	assert.ErrorIs(t, s.CreateFromText("-3"), sorting.ErrInvalidSize)
	assert.Empty(t, rec.frames)

	require.NoError(t, s.CreateFromText("12"))
	assert.Equal(t, 12, s.Frame().Len())
}

func TestSessionSelectAlgorithm(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.SelectAlgorithm("Bubble Sort"))
	assert.Equal(t, sorting.BubbleSort, s.Algorithm())

	assert.ErrorIs(t, s.SelectAlgorithm("bogo"), sorting.ErrInvalidAlgorithm)
	assert.Equal(t, sorting.BubbleSort, s.Algorithm())
	assert.ErrorIs(t, s.SetAlgorithm(sorting.UnknownAlgorithm), sorting.ErrInvalidAlgorithm)
}

func TestSessionCannotSwitchWhileRunning(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Create(10))
	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.SelectAlgorithm("quick"), ErrAnimating)
	s.Stop()
	assert.NoError(t, s.SelectAlgorithm("quick"))
}

func TestSessionStartWithoutSequence(t *testing.T) {
	s, _ := newTestSession()
	assert.ErrorIs(t, s.Start(), sorting.ErrNoSequence)
	assert.False(t, s.Running())
}

func TestSessionTickRunsToCompletion(t *testing.T) {
	s, rec := newTestSession(WithAlgorithm(sorting.BubbleSort))
	require.NoError(t, s.Load([]int{5, 3, 4, 1, 2}))
	require.NoError(t, s.Start())

	ticks := 0
	for s.Running() {
		_, err := s.Tick()
		require.NoError(t, err)
		ticks++
	}
	assert.Equal(t, 4, ticks)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Frame().Values)
	// one frame for the load, one per tick
	assert.Len(t, rec.frames, 5)
	assert.True(t, rec.frames[len(rec.frames)-1].Done)

	res, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, sorting.Done, res)
	assert.Len(t, rec.frames, 5, "idle tick must not present")
}

func TestSessionQuickSortSingleTick(t *testing.T) {
	s, _ := newTestSession(WithAlgorithm(sorting.QuickSort))
	require.NoError(t, s.Load([]int{5, 3, 4, 1, 2}))
	require.NoError(t, s.Start())

	res, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, sorting.Done, res)
	assert.False(t, s.Running())

	f := s.Frame()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, f.Values)
	for _, tag := range f.Tags {
		assert.Equal(t, sorting.Sorted, tag)
	}
}

func TestSessionStopTakesEffectBeforeNextTick(t *testing.T) {
	s, _ := newTestSession(WithAlgorithm(sorting.SelectionSort))
	require.NoError(t, s.Create(20))
	require.NoError(t, s.Start())
	_, err := s.Tick()
	require.NoError(t, err)

	s.Stop()
	before := s.Frame()
	res, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, sorting.Done, res)
	assert.Equal(t, before, s.Frame())
}

func TestSessionStartRewindsCursor(t *testing.T) {
	s, _ := newTestSession(WithAlgorithm(sorting.InsertionSort))
	require.NoError(t, s.Create(10))
	require.NoError(t, s.Start())
	_, _ = s.Tick()
	_, _ = s.Tick()
	assert.Equal(t, 3, s.Frame().Cursor)

	s.Stop()
	require.NoError(t, s.Start())
	assert.Equal(t, 1, s.Frame().Cursor)
	assert.Equal(t, 0, s.Frame().Steps)
}

func TestSessionStepOnce(t *testing.T) {
	s, _ := newTestSession(WithAlgorithm(sorting.MergeSort))
	_, err := s.StepOnce()
	assert.ErrorIs(t, err, sorting.ErrNoSequence)

	require.NoError(t, s.Create(6))
	for i := 0; i < 5; i++ {
		_, err := s.StepOnce()
		require.NoError(t, err)
		assert.False(t, s.Running())
	}
	assert.True(t, sort.IntsAreSorted(s.Frame().Values))
	assert.True(t, s.Frame().Done)
}

func TestSessionStepOnceStopsTimer(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Create(6))
	require.NoError(t, s.Start())
	require.True(t, s.Running())

	_, err := s.StepOnce()
	require.NoError(t, err)
	assert.False(t, s.Running())

	res, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, sorting.Done, res)
	assert.Equal(t, 1, s.Frame().Steps)
}

// gatedPresenter blocks on the first step frame until released.
type gatedPresenter struct {
	mu       sync.Mutex
	frames   []sorting.Frame
	entered  chan struct{}
	release  chan struct{}
	gateOnce sync.Once
}

func (p *gatedPresenter) Present(f sorting.Frame) {
	if f.Steps == 1 {
		p.gateOnce.Do(func() {
			close(p.entered)
			<-p.release
		})
	}
	p.mu.Lock()
	p.frames = append(p.frames, f)
	p.mu.Unlock()
}

func (p *gatedPresenter) last() sorting.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames[len(p.frames)-1]
}

func TestSessionResetPresentedAfterInFlightTick(t *testing.T) {
	p := &gatedPresenter{entered: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(sorting.NewStepper(rand.New(rand.NewSource(9))), WithPresenter(p))
	require.NoError(t, s.Create(20))
	require.NoError(t, s.Start())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = s.Tick()
	}()
	<-p.entered

	go func() {
		defer wg.Done()
		s.Reset()
	}()
	time.Sleep(20 * time.Millisecond)
	close(p.release)
	wg.Wait()

	assert.Empty(t, s.Frame().Values)
	last := p.last()
	assert.Empty(t, last.Values, "presenter must end on the reset frame")
	assert.Equal(t, s.Frame(), last)
}

func TestSessionConcurrentPresentationMatchesState(t *testing.T) {
	p := &gatedPresenter{entered: make(chan struct{}), release: make(chan struct{})}
	close(p.release)
	s := NewSession(sorting.NewStepper(rand.New(rand.NewSource(4))), WithPresenter(p))

	for round := 0; round < 20; round++ {
		require.NoError(t, s.Create(30))
		require.NoError(t, s.Start())

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					_, _ = s.Tick()
				}
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Reset()
		}()
		wg.Wait()

		assert.Equal(t, s.Frame(), p.last())
	}
}

func TestSessionSetInterval(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.SetInterval(1))
	require.NoError(t, s.SetInterval(1000))
	assert.ErrorIs(t, s.SetInterval(0), ErrInvalidInterval)
	assert.ErrorIs(t, s.SetInterval(1001), ErrInvalidInterval)
	assert.Equal(t, 1000, s.IntervalMs())
}

func TestSessionWithIntervalIgnoresOutOfRange(t *testing.T) {
	s, _ := newTestSession(WithInterval(5000))
	assert.Equal(t, DefaultIntervalMs, s.IntervalMs())
}

func TestSessionResetIdempotent(t *testing.T) {
	s, rec := newTestSession()
	require.NoError(t, s.Create(8))
	require.NoError(t, s.Start())
	_, _ = s.Tick()

	s.Reset()
	first := s.Status()
	s.Reset()
	second := s.Status()

	assert.Equal(t, first, second)
	assert.Empty(t, first.Values)
	assert.Empty(t, first.Tags)
	assert.False(t, first.Running)
	assert.Empty(t, rec.frames[len(rec.frames)-1].Values)

	_, err := s.StepOnce()
	assert.ErrorIs(t, err, sorting.ErrNoSequence)
}

func TestPresentersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	calls := 0
	ps := Presenters{a, nil, b, PresenterFunc(func(sorting.Frame) { calls++ })}
	ps.Present(sorting.Frame{Values: []int{1}})
	assert.Len(t, a.frames, 1)
	assert.Len(t, b.frames, 1)
	assert.Equal(t, 1, calls)
}
