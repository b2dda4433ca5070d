// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "fmt"

// FetchError marks a failed read. Handlers treat fetch failures as
// degradable: the public site serves an empty collection instead of an
// error page.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// WriteError marks a failed mutation. Unlike reads, writes are never
// degraded silently; the caller must surface the failure.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

func fetchErr(op string, err error) error {
	return &FetchError{Op: op, Err: err}
}

func writeErr(op string, err error) error {
	return &WriteError{Op: op, Err: err}
}
