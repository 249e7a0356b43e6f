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
	"reflect"
	"slices"
)

// Traced is an error carrying a stack trace.
type Traced interface {
	error
	StackTrace() Stack
}

// TraceSetter is a traced error whose trace can be replaced in place.
type TraceSetter interface {
	SetStackTrace(Stack)
}

// Cloner is an error able to copy itself with a new trace, cause and
// suppressed list. It returns nil when it cannot.
type Cloner interface {
	CloneWithTrace(stack Stack, cause error, suppressed []error) error
}

// Suppressor exposes errors recorded alongside the cause, such as cleanup
// failures.
type Suppressor interface {
	Suppressed() []error
}

// children returns the cause and the suppressed errors of node. Errors
// joined with Unwrap() []error count as suppressed.
func children(node error) (cause error, suppressed []error) {
	if u, ok := node.(interface{ Unwrap() error }); ok {
		cause = u.Unwrap()
	}
	switch x := node.(type) {
	case Suppressor:
		suppressed = x.Suppressed()
	case interface{ Unwrap() []error }:
		suppressed = x.Unwrap()
	}
	return cause, suppressed
}

// identity keys errors by reference. Only reference-like values get one;
// plain values cannot form cycles on their own.
type identity struct {
	t reflect.Type
	p uintptr
}

func identityOf(err error) (identity, bool) {
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Slice:
		return identity{t: rv.Type(), p: rv.Pointer()}, true
	default:
		return identity{}, false
	}
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// walk visits every node reachable from err once.
func walk(err error, seen map[identity]bool, visit func(error)) {
	if isNilError(err) {
		return
	}
	if id, ok := identityOf(err); ok {
		if seen[id] {
			return
		}
		seen[id] = true
	}
	visit(err)
	cause, suppressed := children(err)
	walk(cause, seen, visit)
	for _, s := range suppressed {
		walk(s, seen, visit)
	}
}

// copier rebuilds an error graph with focused traces. done memoizes
// finished copies so shared nodes stay shared; active marks nodes on the
// current path. A back reference met while its target is active points
// at the original until closeCycles redirects it to the copy.
type copier struct {
	f       *Focuser
	done    map[identity]error
	active  map[identity]bool
	created map[identity]bool
}

func newCopier(f *Focuser) *copier {
	return &copier{
		f:       f,
		done:    map[identity]error{},
		active:  map[identity]bool{},
		created: map[identity]bool{},
	}
}

// focus copies err and closes the cycles the copy inherited.
func (c *copier) focus(err error) error {
	out := c.copy(err)
	c.closeCycles(out)
	return out
}

func (c *copier) copy(node error) error {
	if isNilError(node) {
		return node
	}
	id, tracked := identityOf(node)
	if tracked {
		if out, ok := c.done[id]; ok {
			return out
		}
		if c.active[id] {
			return node
		}
		c.active[id] = true
		defer delete(c.active, id)
	}

	out := c.rebuild(node)
	if tracked {
		c.done[id] = out
	}
	if !sameError(node, out) {
		if oid, ok := identityOf(out); ok {
			c.created[oid] = true
		}
	}
	return out
}

// closeCycles rewires the links of copies built by this package that still
// reach an original node which has a copy of its own. Copies produced by a
// foreign Cloner are opaque and keep the link to the original.
func (c *copier) closeCycles(root error) {
	walk(root, map[identity]bool{}, func(node error) {
		id, ok := identityOf(node)
		if !ok || !c.created[id] {
			return
		}
		switch x := node.(type) {
		case *Error:
			x.cause = c.resolve(x.cause)
			for i, s := range x.suppressed {
				x.suppressed[i] = c.resolve(s)
			}
		case *Focused:
			x.cause = c.resolve(x.cause)
			for i, s := range x.suppressed {
				x.suppressed[i] = c.resolve(s)
			}
		}
	})
}

func (c *copier) resolve(err error) error {
	id, ok := identityOf(err)
	if !ok {
		return err
	}
	out, ok := c.done[id]
	if !ok {
		return err
	}
	if oid, ok := identityOf(out); ok && c.created[oid] {
		return out
	}
	return err
}

func (c *copier) rebuild(node error) error {
	cause, suppressed := children(node)
	newCause := c.copy(cause)
	newSuppressed := make([]error, len(suppressed))
	changed := !sameError(cause, newCause)
	for i, s := range suppressed {
		newSuppressed[i] = c.copy(s)
		if !sameError(s, newSuppressed[i]) {
			changed = true
		}
	}

	traced, isTraced := node.(Traced)
	var stack Stack
	if isTraced {
		stack = c.f.Filter(safeTrace(traced))
	}

	if cl, ok := node.(Cloner); ok {
		if out := safeClone(cl, stack, newCause, newSuppressed); out != nil {
			return out
		}
	}
	if !isTraced && !changed {
		return node
	}
	return newFocused(node, stack, newCause, newSuppressed)
}

func safeTrace(t Traced) (s Stack) {
	defer func() {
		if recover() != nil {
			s = nil
		}
	}()
	return slices.Clone(t.StackTrace())
}

func safeClone(cl Cloner, stack Stack, cause error, suppressed []error) (out error) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return cl.CloneWithTrace(stack, cause, suppressed)
}

// sameError compares by identity for reference-like values and by value
// for comparable ones.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ia, oka := identityOf(a)
	ib, okb := identityOf(b)
	if oka || okb {
		return oka && okb && ia == ib
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	defer func() { _ = recover() }()
	return a == b
}
