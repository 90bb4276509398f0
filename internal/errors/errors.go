// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrEmptyTaskName is returned when a submitted task name is empty after trimming whitespace.
var ErrEmptyTaskName = errors.New("empty task name")

// ErrCounterMismatch is returned when the task counter disagrees with the number of listed tasks.
var ErrCounterMismatch = errors.New("task counter does not match task list")

// ErrHostAlreadyRun is returned when a line-mode host is run a second time.
var ErrHostAlreadyRun = errors.New("host has already been run")
