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
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Focused stands in for a node that could not clone itself. It keeps the
// original type name and message, the focused trace and the focused
// children.
type Focused struct {
	TypeName string
	Msg      string

	stack      Stack
	cause      error
	suppressed []error
	original   error
	joined     bool
}

var (
	_ Traced      = (*Focused)(nil)
	_ TraceSetter = (*Focused)(nil)
	_ Cloner      = (*Focused)(nil)
	_ Suppressor  = (*Focused)(nil)
)

func newFocused(node error, stack Stack, cause error, suppressed []error) *Focused {
	_, joined := node.(interface{ Unwrap() []error })
	if _, ok := node.(Suppressor); ok {
		joined = false
	}
	return &Focused{
		TypeName:   fmt.Sprintf("%T", node),
		Msg:        node.Error(),
		stack:      stack,
		cause:      cause,
		suppressed: suppressed,
		original:   node,
		joined:     joined,
	}
}

func (e *Focused) Error() string { return e.Msg }

// Unwrap returns the focused cause.
func (e *Focused) Unwrap() error { return e.cause }

// Original returns the error this one stands in for.
func (e *Focused) Original() error { return e.original }

func (e *Focused) StackTrace() Stack { return e.stack }

func (e *Focused) SetStackTrace(s Stack) { e.stack = s }

// Suppressed returns a copy of the suppressed errors. For a joined error
// these are the joined members.
func (e *Focused) Suppressed() []error { return slices.Clone(e.suppressed) }

// CloneWithTrace implements Cloner. The clone still reports the original
// node to errors.Is and errors.As.
func (e *Focused) CloneWithTrace(stack Stack, cause error, suppressed []error) error {
	cp := *e
	cp.stack = stack
	cp.cause = cause
	cp.suppressed = suppressed
	return &cp
}

// Is matches the original node, and for joined errors the joined members.
func (e *Focused) Is(target error) bool {
	if sameError(e.original, target) {
		return true
	}
	if e.joined {
		for _, s := range e.suppressed {
			if errors.Is(s, target) {
				return true
			}
		}
	}
	return false
}

// As assigns the original node to target when its type fits.
func (e *Focused) As(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || e.original == nil {
		return false
	}
	ov := reflect.ValueOf(e.original)
	if !ov.Type().AssignableTo(rv.Elem().Type()) {
		return false
	}
	rv.Elem().Set(ov)
	return true
}

// Format prints the message; %+v adds the type name and trace.
func (e *Focused) Format(s fmt.State, verb rune) {
	formatTraced(s, verb, e.TypeName, e.Msg, e.stack)
}
