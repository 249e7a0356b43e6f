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

package focus

import (
	"fmt"
	"io"
	"slices"
)

// Error is a traced error implementing every capability Focus uses.
type Error struct {
	msg        string
	cause      error
	suppressed []error
	stack      Stack
}

var (
	_ Traced      = (*Error)(nil)
	_ TraceSetter = (*Error)(nil)
	_ Cloner      = (*Error)(nil)
	_ Suppressor  = (*Error)(nil)
)

// NewError returns an Error with the caller's stack.
func NewError(msg string) *Error {
	return &Error{msg: msg, stack: Capture(1)}
}

// Errorf returns an Error with a formatted message. A %w operand becomes
// the cause.
func Errorf(format string, args ...any) *Error {
	w := fmt.Errorf(format, args...)
	e := &Error{msg: w.Error(), stack: Capture(1)}
	if u, ok := w.(interface{ Unwrap() error }); ok {
		e.cause = u.Unwrap()
	}
	return e
}

// Wrap returns an Error caused by err with the message "msg: err". It
// returns nil when err is nil.
func Wrap(err error, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{msg: msg + ": " + err.Error(), cause: err, stack: Capture(1)}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.cause }

// AddSuppressed records errs next to the cause. Call it before the error
// is shared.
func (e *Error) AddSuppressed(errs ...error) {
	for _, err := range errs {
		if err != nil {
			e.suppressed = append(e.suppressed, err)
		}
	}
}

// Suppressed returns a copy of the suppressed errors in insertion order.
func (e *Error) Suppressed() []error { return slices.Clone(e.suppressed) }

func (e *Error) StackTrace() Stack { return e.stack }

func (e *Error) SetStackTrace(s Stack) { e.stack = s }

// CloneWithTrace implements Cloner. The clone keeps the message and takes
// the given trace, cause and suppressed errors; e is not modified.
func (e *Error) CloneWithTrace(stack Stack, cause error, suppressed []error) error {
	return &Error{msg: e.msg, cause: cause, suppressed: suppressed, stack: stack}
}

// Format prints the message; %+v adds the trace, the cause and the
// suppressed errors.
func (e *Error) Format(s fmt.State, verb rune) {
	formatTraced(s, verb, "", e.msg, e.stack)
	if verb != 'v' || !s.Flag('+') {
		return
	}
	if e.cause != nil {
		fmt.Fprintf(s, "\ncaused by: %+v", e.cause)
	}
	for _, sup := range e.suppressed {
		fmt.Fprintf(s, "\nsuppressed: %+v", sup)
	}
}

func formatTraced(s fmt.State, verb rune, typeName, msg string, stack Stack) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if typeName != "" {
				_, _ = io.WriteString(s, typeName+": ")
			}
			_, _ = io.WriteString(s, msg)
			if len(stack) > 0 {
				_, _ = io.WriteString(s, "\n"+stack.String())
			}
			return
		}
		_, _ = io.WriteString(s, msg)
	case 's':
		_, _ = io.WriteString(s, msg)
	case 'q':
		fmt.Fprintf(s, "%q", msg)
	}
}
