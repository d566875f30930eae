package net

import (
	"math/rand"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
)

type retryingClient struct {
	client   Client
	clock    clock.Clock
	attempts int
}

// NewRetryingClient retries body-less requests that fail in transport. Any
// response, whatever its status, is returned to the caller untouched.
func NewRetryingClient(c Client, clk clock.Clock, attempts int) Client {
	if attempts < 1 {
		attempts = 1
	}

	return &retryingClient{
		client:   c,
		clock:    clk,
		attempts: attempts,
	}
}

func (c *retryingClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var lastErr error
	for i := 0; i < c.attempts; i++ {
		if i > 0 {
			timer := c.clock.NewTimer(delayForAttempt(i))
			select {
			case <-timer.C():
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		resp, err := c.client.Do(req.Clone(ctx))
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

var delays = [3][2]int{
	{250, 750},
	{375, 1125},
	{562, 1687},
}

func delayForAttempt(i int) time.Duration {
	bounds := delays[len(delays)-1]
	if i-1 < len(delays) {
		bounds = delays[i-1]
	}

	random := rand.Intn(bounds[1]-bounds[0]) + bounds[0]
	return time.Duration(random) * time.Millisecond
}
