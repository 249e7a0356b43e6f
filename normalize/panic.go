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

package normalize

import (
	"fmt"
	"slices"

	"dirpx.dev/errticket/focus"
)

// PanicError carries a recovered panic value and the stack at recovery.
type PanicError struct {
	Value any

	cause error
	stack focus.Stack
}

var (
	_ focus.Traced = (*PanicError)(nil)
	_ focus.Cloner = (*PanicError)(nil)
)

// Recover converts a value returned by recover into an error. It returns
// nil for a nil value.
//
//	defer func() {
//		if r := recover(); r != nil {
//			err = normalize.Recover(r)
//		}
//	}()
func Recover(v any) error {
	if v == nil {
		return nil
	}
	e := &PanicError{Value: v, stack: focus.Capture(1)}
	if err, ok := v.(error); ok {
		e.cause = err
	}
	return e
}

func (e *PanicError) Error() string {
	if e.cause != nil {
		return "panic: " + e.cause.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error { return e.cause }

func (e *PanicError) StackTrace() focus.Stack { return e.stack }

func (e *PanicError) SetStackTrace(s focus.Stack) { e.stack = s }

// CloneWithTrace implements focus.Cloner. A PanicError has no suppressed
// errors, so that argument is ignored.
func (e *PanicError) CloneWithTrace(stack focus.Stack, cause error, _ []error) error {
	return &PanicError{Value: e.Value, cause: cause, stack: slices.Clone(stack)}
}
