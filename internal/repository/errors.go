package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL server error numbers that indicate a connection-level problem
const (
	errTooManyConnections = 1040
	errServerShutdown     = 1053
	errLockWaitTimeout    = 1205
	errServerGone         = 2006
	errServerLost         = 2013
	errQueryTimeout       = 3024
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = gorm.ErrRecordNotFound

// StorageError is the terminal error returned by the gateway once an
// operation has been given up on.
type StorageError struct {
	Op        string
	Attempts  int
	Transient bool
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

var transientSignatures = []string{
	"connection reset",
	"connection refused",
	"server closed",
	"server has gone away",
	"lost connection",
	"broken pipe",
	"i/o timeout",
	"timeout",
	"too many connections",
	"invalid connection",
	"bad connection",
}

// IsTransient reports whether err looks like a connection-level failure
// worth retrying. Constraint violations, missing rows and cancellation are
// terminal.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errTooManyConnections, errServerShutdown, errLockWaitTimeout,
			errServerGone, errServerLost, errQueryTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// ErrorCode returns a short label for err suitable for logs and metrics
func ErrorCode(err error) string {
	var myErr *mysql.MySQLError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &myErr):
		return fmt.Sprintf("mysql_%d", myErr.Number)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, mysql.ErrInvalidConn):
		return "bad_conn"
	case errors.Is(err, syscall.ECONNRESET):
		return "econnreset"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "econnrefused"
	case errors.Is(err, syscall.EPIPE):
		return "epipe"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "net_timeout"
	}
	return "unknown"
}
