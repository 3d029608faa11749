package util

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorGuard wraps a report runner so a panic in one action surfaces as an
// error instead of aborting the whole batch.
func ErrorGuard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("recovered from panic in report action")
				err = fmt.Errorf("recovered from panic: %v", r)
			}
		}()
		return fn()
	}
}
