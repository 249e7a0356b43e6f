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
	"regexp"
)

// DefaultPatterns are the class patterns of the default noise set: the Go
// runtime and standard plumbing packages plus the transport frameworks
// requests usually pass through.
var DefaultPatterns = []string{
	`^runtime(\.|/|$)`,
	`^reflect(\.|$)`,
	`^syscall(\.|$)`,
	`^internal/`,
	`^sync(\.|/|$)`,
	`^testing(\.|$)`,
	`^context(\.|$)`,
	`^net(\.|$)`,
	`^net/http(\.|/|$)`,
	`^google\.golang\.org/grpc(\.|/|$)`,
	`^github\.com/gin-gonic/gin(\.|/|$)`,
	`^golang\.org/x/net(\.|/|$)`,
	`^golang\.org/x/sync(\.|/|$)`,
}

var defaultClasses = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(DefaultPatterns))
	for i, p := range DefaultPatterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}()

// Builder accumulates ignore patterns for a Focuser. Pattern compile
// errors are collected and reported by Build.
type Builder struct {
	classes      []*regexp.Regexp
	methods      []*regexp.Regexp
	files        []*regexp.Regexp
	lines        []int
	skipDefaults bool
	errs         []error
}

// NewBuilder returns a Builder that includes the default patterns unless
// SkipDefaultPatterns is called.
func NewBuilder() *Builder { return &Builder{} }

// AddClass adds class regular expressions.
func (b *Builder) AddClass(patterns ...string) *Builder {
	b.classes = b.compile(b.classes, "class", patterns)
	return b
}

// AddClassPattern adds compiled class patterns.
func (b *Builder) AddClassPattern(res ...*regexp.Regexp) *Builder {
	b.classes = append(b.classes, res...)
	return b
}

// AddMethod adds method regular expressions.
func (b *Builder) AddMethod(patterns ...string) *Builder {
	b.methods = b.compile(b.methods, "method", patterns)
	return b
}

// AddMethodPattern adds compiled method patterns.
func (b *Builder) AddMethodPattern(res ...*regexp.Regexp) *Builder {
	b.methods = append(b.methods, res...)
	return b
}

// AddFile adds file path regular expressions.
func (b *Builder) AddFile(patterns ...string) *Builder {
	b.files = b.compile(b.files, "file", patterns)
	return b
}

// AddFilePattern adds compiled file patterns.
func (b *Builder) AddFilePattern(res ...*regexp.Regexp) *Builder {
	b.files = append(b.files, res...)
	return b
}

// AddLine ignores frames at the given line numbers.
func (b *Builder) AddLine(lines ...int) *Builder {
	b.lines = append(b.lines, lines...)
	return b
}

// SkipDefaultPatterns drops DefaultPatterns from the result.
func (b *Builder) SkipDefaultPatterns() *Builder {
	b.skipDefaults = true
	return b
}

// Build returns the Focuser, or the joined pattern compile errors.
func (b *Builder) Build() (*Focuser, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	var ps []Predicate
	if !b.skipDefaults {
		ps = append(ps, classPredicates(defaultClasses)...)
	}
	ps = append(ps, classPredicates(b.classes)...)
	for _, re := range b.methods {
		if re != nil {
			ps = append(ps, IgnoreMethod(re))
		}
	}
	for _, re := range b.files {
		if re != nil {
			ps = append(ps, IgnoreFile(re))
		}
	}
	if len(b.lines) > 0 {
		ps = append(ps, IgnoreLine(b.lines...))
	}
	return New(ps...), nil
}

// MustBuild is Build that panics on invalid patterns.
func (b *Builder) MustBuild() *Focuser {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

func (b *Builder) compile(dst []*regexp.Regexp, kind string, patterns []string) []*regexp.Regexp {
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			b.errs = append(b.errs, fmt.Errorf("focus: %s pattern %q: %w", kind, p, err))
			continue
		}
		dst = append(dst, re)
	}
	return dst
}
