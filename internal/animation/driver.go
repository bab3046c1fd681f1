package animation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Ticker is the part of a Session a Driver needs.
type Ticker interface {
	Tick() (sorting.StepResult, error)
	Interval() time.Duration
}

// Driver calls Tick on a background goroutine every Interval. The interval
// is re-read before each wait, so changes apply from the next tick.
type Driver struct {
	target     Ticker
	log        zerolog.Logger
	exitOnDone bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

type DriverOption func(*Driver)

// ExitOnDone makes Run return as soon as a tick reports Done.
func ExitOnDone() DriverOption {
	return func(d *Driver) { d.exitOnDone = true }
}

func WithDriverLogger(l zerolog.Logger) DriverOption {
	return func(d *Driver) { d.log = l }
}

func NewDriver(target Ticker, opts ...DriverOption) *Driver {
	d := &Driver{target: target, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run ticks until ctx is canceled, or until Done when ExitOnDone is set.
func (d *Driver) Run(ctx context.Context) error {
	for {
		timer := time.NewTimer(d.target.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		res, err := d.target.Tick()
		if err != nil {
			d.log.Error().Err(err).Msg("tick failed")
		}
		if res == sorting.Done && d.exitOnDone {
			return nil
		}
	}
}

// Start launches Run on a goroutine. Calling Start on a running driver is a no-op.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	d.cancel, d.stopped = cancel, stopped

	go func() {
		defer d.handleExit(stopped)
		if err := d.Run(runCtx); err != nil && runCtx.Err() == nil {
			d.log.Error().Err(err).Msg("driver exited")
		}
	}()
	d.log.Debug().Msg("driver started")
}

// Stop cancels the goroutine and waits for it, so no tick lands after Stop returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, stopped := d.cancel, d.stopped
	d.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// Wait blocks until the driver goroutine exits.
func (d *Driver) Wait() {
	d.mu.Lock()
	stopped := d.stopped
	d.mu.Unlock()
	if stopped != nil {
		<-stopped
	}
}

func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

func (d *Driver) handleExit(stopped chan struct{}) {
	d.mu.Lock()
	if d.stopped == stopped {
		d.cancel()
		d.cancel, d.stopped = nil, nil
	}
	d.mu.Unlock()
	close(stopped)
	d.log.Debug().Msg("driver stopped")
}
