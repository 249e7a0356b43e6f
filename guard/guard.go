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

// Package guard validates preconditions and reports violations as error
// tickets.
//
// Guards return the ticket as an error instead of panicking; the caller
// returns it to the API boundary unchanged:
//
//	user, err := guard.NotNil(findUser(id), "user")
//	if err != nil {
//		return err
//	}
package guard

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
)

// General returns a code.GeneralError ticket.
func General(details string) *errticket.Ticket {
	return errticket.E(code.GeneralError, details)
}

// NotFound returns a code.NotFound ticket. When details is an error the
// message of its innermost cause is used.
func NotFound(details any) *errticket.Ticket {
	return errticket.E(code.NotFound, rootMessage(details))
}

// NotLoggedIn returns a code.NotLoggedIn ticket.
func NotLoggedIn() *errticket.Ticket {
	return errticket.New().WithCode(code.NotLoggedIn).Build()
}

// NotImplemented returns a code.NotImplemented ticket with a formatted
// detail.
func NotImplemented(format string, args ...any) *errticket.Ticket {
	return errticket.New().WithCode(code.NotImplemented).WithDetailsf(format, args...).Build()
}

// NotNil returns v, or a code.ArgumentNull ticket when v is nil.
func NotNil[T any](v T, msg any) (T, error) {
	return NotNilWith(v, errticket.WithDetailsOption(text(msg)))
}

// NotNilCode returns v, or a ticket with code c when v is nil.
func NotNilCode[T any](v T, msg any, c apis.ErrorCode) (T, error) {
	if c == nil {
		return v, errMissingCode
	}
	return NotNilWith(v, codeOptions(c, msg)...)
}

// NotNilWith returns v, or a code.ArgumentNull ticket customized by opts
// when v is nil.
func NotNilWith[T any](v T, opts ...errticket.Option) (T, error) {
	if isNil(v) {
		return v, build(code.ArgumentNull, opts)
	}
	return v, nil
}

// ThenNotNil returns NotNil as a step function.
func ThenNotNil[T any](msg any) func(T) (T, error) {
	return func(v T) (T, error) { return NotNil(v, msg) }
}

// AllNotNil fails with code.ArgumentNull when any value is nil.
func AllNotNil(values []any, msg any) error {
	return AllNotNilWith(values, errticket.WithDetailsOption(text(msg)))
}

// AllNotNilWith is AllNotNil with a customized ticket.
func AllNotNilWith(values []any, opts ...errticket.Option) error {
	for _, v := range values {
		if isNil(v) {
			return build(code.ArgumentNull, opts)
		}
	}
	return nil
}

// AnyNotNil fails with code.ArgumentNull when values is empty or every
// value is nil.
func AnyNotNil(values []any, msg any) error {
	return AnyNotNilWith(values, errticket.WithDetailsOption(text(msg)))
}

// AnyNotNilWith is AnyNotNil with a customized ticket.
func AnyNotNilWith(values []any, opts ...errticket.Option) error {
	for _, v := range values {
		if !isNil(v) {
			return nil
		}
	}
	return build(code.ArgumentNull, opts)
}

// Argument fails with code.ArgumentWrong when ok is false.
func Argument(ok bool, details any) error {
	return ArgumentWith(ok, errticket.WithDetailsOption(text(details)))
}

// ArgumentCode fails with code c when ok is false.
func ArgumentCode(ok bool, details any, c apis.ErrorCode) error {
	if c == nil {
		return errMissingCode
	}
	if ok {
		return nil
	}
	return build(c, codeOptions(c, details))
}

// ArgumentWith fails with a code.ArgumentWrong ticket customized by opts
// when ok is false.
func ArgumentWith(ok bool, opts ...errticket.Option) error {
	if ok {
		return nil
	}
	return build(code.ArgumentWrong, opts)
}

var errMissingCode = errticket.NewBug("guard: error code is mandatory")

func codeOptions(c apis.ErrorCode, msg any) []errticket.Option {
	return []errticket.Option{
		errticket.WithCodeOption(c),
		errticket.WithGroupOption(c.Group()),
		errticket.WithDetailsOption(text(msg)),
	}
}

func build(c apis.ErrorCode, opts []errticket.Option) *errticket.Ticket {
	b := errticket.New().WithCode(c)
	for _, o := range opts {
		if o != nil {
			o(b)
		}
	}
	return b.Build()
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}

func rootMessage(v any) string {
	err, ok := v.(error)
	if !ok {
		return text(v)
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
