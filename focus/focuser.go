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
	"regexp"
	"slices"
	"sync"
)

// Focuser filters stack frames. A frame is kept when none of the ignore
// predicates match it.
type Focuser struct {
	ignores []Predicate
}

// New returns a Focuser ignoring frames matched by any of ignores. With no
// predicates every frame is kept.
func New(ignores ...Predicate) *Focuser {
	f := &Focuser{}
	for _, p := range ignores {
		if p != nil {
			f.ignores = append(f.ignores, p)
		}
	}
	return f
}

// IgnoreClassNames returns a Focuser ignoring frames whose class matches
// any of res.
func IgnoreClassNames(res ...*regexp.Regexp) *Focuser {
	return New(classPredicates(res)...)
}

var runtimeClasses = []*regexp.Regexp{
	regexp.MustCompile(`^runtime(\.|/|$)`),
	regexp.MustCompile(`^reflect(\.|$)`),
	regexp.MustCompile(`^testing(\.|$)`),
}

// IgnoreRuntime returns a Focuser ignoring frames of the Go runtime, the
// reflect package and the testing harness.
func IgnoreRuntime() *Focuser {
	return IgnoreClassNames(runtimeClasses...)
}

// AndIgnoreClassNames returns a Focuser ignoring everything f ignores plus
// frames whose class matches any of res.
func (f *Focuser) AndIgnoreClassNames(res ...*regexp.Regexp) *Focuser {
	return f.And(IgnoreClassNames(res...))
}

// And returns a Focuser ignoring every frame ignored by f or by other.
func (f *Focuser) And(other *Focuser) *Focuser {
	out := &Focuser{ignores: slices.Clone(f.ignores)}
	if other != nil {
		out.ignores = append(out.ignores, other.ignores...)
	}
	return out
}

// Ignores reports whether any predicate matches fr.
func (f *Focuser) Ignores(fr Frame) bool {
	for _, p := range f.ignores {
		if p(fr) {
			return true
		}
	}
	return false
}

// Keep reports whether fr survives focusing.
func (f *Focuser) Keep(fr Frame) bool { return !f.Ignores(fr) }

// Filter returns the kept frames of s in their original order. The input
// is not modified.
func (f *Focuser) Filter(s Stack) Stack {
	out := make(Stack, 0, len(s))
	for _, fr := range s {
		if f.Keep(fr) {
			out = append(out, fr)
		}
	}
	return out
}

func classPredicates(res []*regexp.Regexp) []Predicate {
	out := make([]Predicate, 0, len(res))
	for _, re := range res {
		if re != nil {
			out = append(out, IgnoreClass(re))
		}
	}
	return out
}

var defaultFocuser = sync.OnceValue(func() *Focuser {
	return NewBuilder().MustBuild()
})

// Default returns the shared Focuser built from DefaultPatterns.
func Default() *Focuser { return defaultFocuser() }

// Focus returns a copy of err in which every traced node carries only the
// kept frames. The input graph is left untouched. Focus(nil) is nil.
//
// Nodes implementing Cloner are cloned with their own type. Traced nodes
// that cannot clone become a *Focused. Untraced nodes whose descendants
// did not change are returned as is.
func (f *Focuser) Focus(err error) error {
	if err == nil {
		return nil
	}
	return newCopier(f).focus(err)
}

// FocusInPlace rewrites the trace of every node implementing TraceSetter
// and returns err. Other nodes are traversed but left as they are.
func (f *Focuser) FocusInPlace(err error) error {
	if err == nil {
		return nil
	}
	seen := map[identity]bool{}
	walk(err, seen, func(node error) {
		t, ok := node.(Traced)
		if !ok {
			return
		}
		if s, ok := node.(TraceSetter); ok {
			s.SetStackTrace(f.Filter(t.StackTrace()))
		}
	})
	return err
}

// FocusTyped focuses err keeping its static type. It reports false, and
// returns err untouched, when the focused copy is not a T: the node has no
// Cloner and was wrapped into a *Focused, or a Cloner returned another
// type. Callers that accept mutation can then use FocusInPlace.
func FocusTyped[T error](f *Focuser, err T) (T, bool) {
	if isNilError(err) {
		return err, true
	}
	if out, ok := f.Focus(err).(T); ok {
		return out, true
	}
	return err, false
}
