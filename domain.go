/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errticket

import (
	"fmt"

	"dirpx.dev/errticket/code"
)

// NotFoundPrefix starts every NotFoundError message.
const NotFoundPrefix = "Item Not Found:"

// NotFoundError reports a missing resource. It propagates to a
// code.NotFound ticket.
type NotFoundError struct {
	Msg   string
	Cause error
}

// NotFound returns a NotFoundError with a fmt-formatted message.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: NotFoundPrefix + fmt.Sprintf(format, args...)}
}

// WrapNotFound returns a NotFoundError caused by err.
func WrapNotFound(err error, format string, args ...any) *NotFoundError {
	e := NotFound(format, args...)
	e.Cause = err
	return e
}

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Unwrap() error { return e.Cause }

// TicketBuilder implements Provider.
func (e *NotFoundError) TicketBuilder() *Builder {
	return New().WithCode(code.NotFound).WithDetails(e.Msg).WithCause(e)
}

// NotImplementedError reports an operation without an implementation.
// Code is an optional application marker reported as the
// "not_implemented_code" extension.
type NotImplementedError struct {
	Msg   string
	Code  string
	Cause error
}

// NotImplemented returns a NotImplementedError.
func NotImplemented(msg string) *NotImplementedError {
	return &NotImplementedError{Msg: msg}
}

func (e *NotImplementedError) Error() string {
	if e.Msg == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Msg
}

func (e *NotImplementedError) Unwrap() error { return e.Cause }

// TicketBuilder implements Provider.
func (e *NotImplementedError) TicketBuilder() *Builder {
	b := New().WithCode(code.NotImplemented).WithDetails(e.Error()).WithCause(e)
	if e.Code != "" {
		b.WithExtension("not_implemented_code", e.Code)
	}
	return b
}
