package sim

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Loop drives one Simulation at a fixed tick rate on its own goroutine.
// Each tick calls Update with the real elapsed time since the previous
// tick; Update clamps hitched frames itself. Start blocks until Stop,
// so the Loop plugs straight into the server lifecycle.
type Loop struct {
	sim      *Simulation
	interval time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	onTick func(*Simulation)

	done chan struct{}
	once sync.Once
}

// NewLoop returns a stopped Loop ticking tickRate times per second.
//
// Precondition: s and logger must be non-nil; tickRate must be > 0.
func NewLoop(s *Simulation, tickRate int, logger *zap.Logger) *Loop {
	if tickRate <= 0 {
		panic("sim.NewLoop: tickRate must be > 0")
	}
	return &Loop{
		sim:      s,
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// OnTick registers fn to run after every Update, on the loop goroutine.
// Replaces any previously registered callback.
func (l *Loop) OnTick(fn func(*Simulation)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onTick = fn
}

// Start runs the frame loop until Stop is called. It always returns nil;
// per the session's design no tick can fail.
//
// Postcondition: the Simulation is no longer advanced once Start returns.
func (l *Loop) Start() error {
	l.logger.Info("frame loop running",
		zap.Duration("interval", l.interval))

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-l.done:
			l.logger.Info("frame loop stopped")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			l.sim.Update(dt)

			l.mu.Lock()
			fn := l.onTick
			l.mu.Unlock()
			if fn != nil {
				fn(l.sim)
			}
		}
	}
}

// Stop ends the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}
