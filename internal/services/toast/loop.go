package toast

import "sync"

// Loop runs posted functions one at a time on a single goroutine. It is the
// headless stand-in for the UI event loop: everything that mutates a Store
// outside Bubble Tea goes through a Loop.
type Loop struct {
	events    chan func()
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewLoop starts a loop whose queue holds up to buffer pending events
func NewLoop(buffer int) *Loop {
	l := &Loop{
		events:  make(chan func(), buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.stopped)
	for {
		select {
		case fn := <-l.events:
			fn()
		case <-l.done:
			return
		}
	}
}

// Post enqueues fn without waiting for it to run. It reports false if the
// loop has been closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish. It reports false if
// the loop closed before fn ran. Calling Do from inside the loop deadlocks.
func (l *Loop) Do(fn func()) bool {
	ran := make(chan struct{})
	if !l.Post(func() {
		fn()
		close(ran)
	}) {
		return false
	}
	select {
	case <-ran:
		return true
	case <-l.stopped:
		select {
		case <-ran:
			return true
		default:
			return false
		}
	}
}

// Close stops the loop after the event in progress. Queued events that
// have not started are dropped. Safe to call more than once.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
	<-l.stopped
}
