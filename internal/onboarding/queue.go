package onboarding

// Queue is a Scheduler that holds deferred funcs until the event loop drains
// it on a later turn.
type Queue struct {
	pending []func()
}

func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Len reports how many funcs are waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain runs the funcs queued so far. Funcs deferred while draining wait for
// the next Drain.
func (q *Queue) Drain() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
