package win

import "iter"

// Gate is what a flow yields at the end of a step.
type Gate uint8

const (
	// GateFrame releases the next step after the next redraw.
	GateFrame Gate = iota
	// GateHold keeps the scheduler parked through the next redraw, so the
	// step's mutation is painted by a later, explicit redraw before the
	// next step runs.
	GateHold
)

// Flow is a finite, restartable sequence of UI steps. Each yield ends one
// step; returning ends the flow. A flow that stops early because yield
// returned false must not yield again.
type Flow func(yield func(Gate) bool)

// Scheduler drives enqueued flows one step per redraw. Flows run one after
// another in enqueue order and never interleave. It is not safe for
// concurrent use; it belongs to the goroutine that draws.
type Scheduler struct {
	queue []Flow
	next  func() (Gate, bool)
	stop  func()
	ready bool
	hold  int
	steps uint64
}

// NewScheduler creates an idle scheduler. Nothing runs until the first
// Redrawn.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Enqueue appends f to the chain. A nil flow is ignored.
func (s *Scheduler) Enqueue(f Flow) {
	if f == nil {
		return
	}
	s.queue = append(s.queue, f)
}

// Pending reports whether a flow is running or queued.
func (s *Scheduler) Pending() bool {
	return s.next != nil || len(s.queue) > 0
}

// Ready reports whether the redraw gate is open.
func (s *Scheduler) Ready() bool { return s.ready }

// Steps returns the number of steps run so far.
func (s *Scheduler) Steps() uint64 { return s.steps }

// Redrawn opens the gate, unless a hold is outstanding, in which case one
// hold is consumed instead.
func (s *Scheduler) Redrawn() {
	if s.hold > 0 {
		s.hold--
		return
	}
	s.ready = true
}

// Hold closes the gate and requires one extra redraw before the next step.
func (s *Scheduler) Hold() {
	s.ready = false
	s.hold++
}

// Tick runs exactly one step if the gate is open and work is pending, and
// reports whether it did. An exhausted flow hands over to the next queued
// flow within the same tick. Panics raised by a flow propagate.
func (s *Scheduler) Tick() bool {
	if !s.ready || !s.Pending() {
		return false
	}
	s.ready = false
	for {
		if s.next == nil {
			if len(s.queue) == 0 {
				return false
			}
			f := s.queue[0]
			s.queue[0] = nil
			s.queue = s.queue[1:]
			s.next, s.stop = iter.Pull(iter.Seq[Gate](f))
		}
		g, ok := s.next()
		if !ok {
			s.stop()
			s.next, s.stop = nil, nil
			continue
		}
		s.steps++
		if g == GateHold {
			s.Hold()
		}
		return true
	}
}

// Close abandons the running flow and drops the queue.
func (s *Scheduler) Close() {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = nil, nil
	s.queue = nil
	s.hold = 0
}

// Steps builds a flow that runs each fn as one step.
func Steps(fns ...func()) Flow {
	return func(yield func(Gate) bool) {
		for _, fn := range fns {
			fn()
			if !yield(GateFrame) {
				return
			}
		}
	}
}

// Sequence concatenates flows into one.
func Sequence(flows ...Flow) Flow {
	return func(yield func(Gate) bool) {
		for _, f := range flows {
			stopped := false
			f(func(g Gate) bool {
				if !yield(g) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return
			}
		}
	}
}

// Await builds a flow that runs fn on its own goroutine and yields frames
// until it returns, then hands the result to done on the scheduler's
// goroutine and yields once more so done's mutations are painted.
func Await[T any](fn func() (T, error), done func(T, error)) Flow {
	return func(yield func(Gate) bool) {
		type result struct {
			v   T
			err error
		}
		ch := make(chan result, 1)
		go func() {
			v, err := fn()
			ch <- result{v, err}
		}()
		for {
			select {
			case r := <-ch:
				if done != nil {
					done(r.v, r.err)
				}
				yield(GateFrame)
				return
			default:
				if !yield(GateFrame) {
					return
				}
			}
		}
	}
}
