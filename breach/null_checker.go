package breach

import (
	"context"

	"code.cloudfoundry.org/lager"
)

type nullChecker struct{}

func NewNullChecker() Checker {
	return &nullChecker{}
}

func (nullChecker) Check(ctx context.Context, logger lager.Logger, password string) Result {
	logger.Session("breach-check").Debug("disabled")
	return Failed(ErrDisabled)
}
