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
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/errticket/code"
)

// Provider is implemented by domain errors that describe their own ticket.
type Provider interface {
	TicketBuilder() *Builder
}

// NullPointer is the detail of tickets propagated from nil dereferences.
const NullPointer = "NullPointer"

// Propagate converts err into a ticket.
//
// The chain is walked outermost first with errors.Unwrap, and the first
// node that is a *Ticket or a Provider decides:
//
//   - a *Ticket is returned as is, or copied when options are given;
//   - a Provider builds its own ticket, so a domain error wrapping a ticket
//     keeps its own code.
//
// When no node qualifies the result is a code.GeneralError ticket whose
// detail is the error message. Without a message the detail is NullPointer
// for nil dereferences and the dynamic type name otherwise.
//
// Options run last and may override any field. Propagate(nil) returns nil.
func Propagate(err error, opts ...Option) *Ticket {
	if err == nil {
		return nil
	}

	var b *Builder
	for cur := err; cur != nil && b == nil; cur = errors.Unwrap(cur) {
		if isNil(cur) {
			break
		}
		if t, ok := cur.(*Ticket); ok && t != nil {
			if len(opts) == 0 {
				return t
			}
			b = BuilderFrom(t)
			break
		}
		if p, ok := cur.(Provider); ok && !isNil(p) {
			b = p.TicketBuilder()
		}
	}
	if b == nil {
		b = New().WithCode(code.GeneralError).WithDetails(describe(err)).WithCause(err)
	}
	apply(b, opts)
	return b.Build()
}

func describe(err error) string {
	if isNil(err) {
		return NullPointer
	}
	if rt, ok := err.(runtime.Error); ok && isNilDeref(rt) {
		return NullPointer
	}
	if msg := safeMessage(err); msg != "" {
		return msg
	}
	return fmt.Sprintf("%T", err)
}

// safeMessage calls Error, treating a panic inside it (typically a nil
// receiver) as an empty message.
func safeMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return err.Error()
}

func isNilDeref(err runtime.Error) bool {
	return strings.Contains(safeMessage(err), "nil pointer dereference")
}

// isNil reports whether v is a typed nil hidden in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
