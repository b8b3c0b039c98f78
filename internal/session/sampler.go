package session

import (
	"context"
	"math"
	"sync"
	"time"
)

// defaultSampleInterval approximates the display-refresh cadence the live
// meters were tuned for.
const defaultSampleInterval = 100 * time.Millisecond

// sampler periodically reads the stream's signal taps and overwrites a
// single shared BiometricSample slot. Single writer, last write wins.
type sampler struct {
	interval time.Duration

	mu      sync.RWMutex
	current BiometricSample

	cancel context.CancelFunc
	done   chan struct{}
}

func newSampler(interval time.Duration) *sampler {
	if interval <= 0 {
		interval = defaultSampleInterval
	}
	return &sampler{interval: interval}
}

// start launches the sampling loop. It runs until stop is called or the
// parent context is cancelled.
func (s *sampler) start(ctx context.Context, stream Stream) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sample := computeSample(stream.AudioLevel(), stream.FrameMotion())
				s.mu.Lock()
				s.current = sample
				s.mu.Unlock()
			}
		}
	}()
}

// stop cancels the loop and waits for the final tick to finish. Safe to call
// when the loop never started, and safe to call twice.
func (s *sampler) stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// snapshot returns the most recent sample.
func (s *sampler) snapshot() BiometricSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// computeSample maps the raw signal taps onto the 0-100 display proxies.
// Voice scales linearly with mean amplitude; gaze stability is inversely
// proportional to frame motion with a 75-99 band; expressiveness tracks
// voice energy with a 98 ceiling.
func computeSample(audioLevel, frameMotion float64) BiometricSample {
	voice := int(math.Round(audioLevel * 8))
	if voice > 100 {
		voice = 100
	}
	if voice < 0 {
		voice = 0
	}

	gaze := int(math.Round(100 - frameMotion/5))
	if gaze > 99 {
		gaze = 99
	}
	if gaze < 75 {
		gaze = 75
	}

	expression := int(math.Round(85 + audioLevel*2))
	if expression > 98 {
		expression = 98
	}
	if expression < 0 {
		expression = 0
	}

	return BiometricSample{Voice: voice, Gaze: gaze, Expression: expression}
}
