package breach

import "errors"

var ErrDisabled = errors.New("breach lookup disabled")

// Result is the outcome of one lookup: a breach count, or the reason the
// lookup could not be completed. A failed Result carries no count.
type Result struct {
	count int
	err   error
}

func Found(count int) Result {
	return Result{count: count}
}

func NotFound() Result {
	return Result{}
}

func Failed(err error) Result {
	return Result{err: err}
}

func (r Result) Failed() bool {
	return r.err != nil
}

func (r Result) Err() error {
	return r.err
}

func (r Result) Breached() bool {
	return r.err == nil && r.count > 0
}

func (r Result) Count() int {
	return r.count
}
