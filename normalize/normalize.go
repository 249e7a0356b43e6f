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

// Package normalize prepares arbitrary failures for ticket propagation:
// it peels wrapper errors and focuses the stack traces of what remains.
package normalize

import (
	"errors"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/focus"
)

// Matcher reports whether err is a wrapper to peel.
type Matcher func(error) bool

// TypeOf matches errors whose dynamic type is T.
func TypeOf[T error]() Matcher {
	return func(err error) bool {
		_, ok := err.(T)
		return ok
	}
}

// Unbox peels err while it matches any of matchers and has a cause. The
// first error that does not match, or has no cause, is returned.
func Unbox(err error, matchers ...Matcher) error {
	for err != nil && matchesAny(err, matchers) {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

func matchesAny(err error, matchers []Matcher) bool {
	for _, m := range matchers {
		if m != nil && m(err) {
			return true
		}
	}
	return false
}

// Normalizer unboxes wrappers and focuses traces.
type Normalizer struct {
	focuser  *focus.Focuser
	wrappers []Matcher
	inPlace  bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithFocuser replaces the default focus.Default focuser.
func WithFocuser(f *focus.Focuser) Option {
	return func(n *Normalizer) {
		if f != nil {
			n.focuser = f
		}
	}
}

// WithWrappers adds wrapper matchers to the default *PanicError one.
func WithWrappers(ms ...Matcher) Option {
	return func(n *Normalizer) { n.wrappers = append(n.wrappers, ms...) }
}

// WithInPlace makes Normalize rewrite traces in place instead of copying.
func WithInPlace() Option {
	return func(n *Normalizer) { n.inPlace = true }
}

// New returns a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		focuser:  focus.Default(),
		wrappers: []Matcher{TypeOf[*PanicError]()},
	}
	for _, o := range opts {
		if o != nil {
			o(n)
		}
	}
	return n
}

// Focuser returns the focuser in use.
func (n *Normalizer) Focuser() *focus.Focuser { return n.focuser }

// Normalize unboxes err and focuses the result.
func (n *Normalizer) Normalize(err error) error {
	err = Unbox(err, n.wrappers...)
	if n.inPlace {
		return n.focuser.FocusInPlace(err)
	}
	return n.focuser.Focus(err)
}

// Ticket normalizes err and propagates it into a ticket.
func (n *Normalizer) Ticket(err error, opts ...errticket.Option) *errticket.Ticket {
	return errticket.Propagate(n.Normalize(err), opts...)
}

var std = New()

// Normalize uses the default Normalizer.
func Normalize(err error) error { return std.Normalize(err) }

// Ticket uses the default Normalizer.
func Ticket(err error, opts ...errticket.Option) *errticket.Ticket {
	return std.Ticket(err, opts...)
}
