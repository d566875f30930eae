package breach

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/net"
)

const (
	DefaultURL     = "https://api.pwnedpasswords.com"
	DefaultTimeout = 3 * time.Second
)

//go:generate counterfeiter . Checker

type Checker interface {
	Check(ctx context.Context, logger lager.Logger, password string) Result
}

type Options struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
	Padding   bool
}

type client struct {
	httpClient net.Client
	opts       Options
}

func NewClient(httpClient net.Client, opts Options) Checker {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	opts.URL = strings.TrimSuffix(opts.URL, "/")

	return &client{
		httpClient: httpClient,
		opts:       opts,
	}
}

// Check only ever sends the first five characters of the password digest.
// Every failure, including the lookup timing out, is reported as a failed
// Result rather than an error.
func (c *client) Check(ctx context.Context, logger lager.Logger, password string) Result {
	prefix, suffix := Hash(password)

	logger = logger.Session("breach-check", lager.Data{"prefix": prefix})
	logger.Debug("starting")
	defer logger.Debug("done")

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.opts.URL+"/range/"+prefix, nil)
	if err != nil {
		logger.Error("request-failed", err)
		return Failed(err)
	}

	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	if c.opts.Padding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("response-error", err)
		return Failed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("bad response (!200): %d", resp.StatusCode)
		logger.Error("bad-response", err)
		return Failed(err)
	}

	count, err := scanRange(resp, suffix)
	if err != nil {
		logger.Error("parse-failed", err)
		return Failed(err)
	}

	if count > 0 {
		logger.Info("breached", lager.Data{"count": count})
		return Found(count)
	}

	return NotFound()
}

func scanRange(resp *http.Response, suffix string) (int, error) {
	scanner := bufio.NewScanner(resp.Body)

	for scanner.Scan() {
		record := strings.TrimSuffix(scanner.Text(), "\r")

		parts := strings.SplitN(record, ":", 2)
		if parts[0] != suffix {
			continue
		}

		if len(parts) != 2 {
			return 0, errors.New("malformed range record: missing count")
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, err
		}

		if count < 0 {
			return 0, fmt.Errorf("negative breach count: %d", count)
		}

		return count, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, nil
}
