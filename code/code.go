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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"dirpx.dev/errticket/apis"
)

// Group is the provider group of the builtin codes.
const Group = "default"

// Code is a builtin error code of the "default" group.
//
// It is defined as a separate type (not just string) so that a raw wire
// name can never be mistaken for a resolved code. The zero value is not a
// valid code.
type Code string

// MaxLength is the maximum length of a code wire name. It bounds the input
// accepted by Parse so that garbage payloads are rejected early.
const MaxLength = 64

// nameRe validates the shape of a wire name: an ASCII letter followed by
// letters, digits or underscores. Builtin names are CamelCase; other groups
// (oauth) use snake_case, both fit this pattern.
var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

var (
	// ErrCodeInvalid is returned when a value is not a well-formed code name.
	ErrCodeInvalid = errors.New("errticket: invalid code name")

	// ErrCodeUnknown is returned when a well-formed name is not a builtin code.
	ErrCodeUnknown = errors.New("errticket: unknown builtin code")
)

// Ensure Code implements the capability and text (un)marshaling.
var (
	_ apis.ErrorCode           = Code("")
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Group implements apis.ErrorCode.
func (c Code) Group() string { return Group }

// StatusCode implements apis.ErrorCode. Unknown values report 0.
func (c Code) StatusCode() int { return statuses[c] }

// String returns the wire name of the code.
func (c Code) String() string { return string(c) }

// Lookup resolves name against the builtin set. Matching is exact (names
// are case-sensitive, like enum constants).
func Lookup(name string) (Code, bool) {
	c := Code(name)
	if _, ok := statuses[c]; !ok {
		return "", false
	}
	return c, true
}

// Parse trims, validates and resolves a user-provided name.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if !ValidName(s) {
		return "", ErrCodeInvalid
	}
	c, ok := Lookup(s)
	if !ok {
		return "", ErrCodeUnknown
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ValidName reports whether s has the shape of a code wire name.
func ValidName(s string) bool {
	return len(s) > 0 && len(s) <= MaxLength && nameRe.MatchString(s)
}

// All returns the builtin codes in declaration order.
func All() []Code {
	out := make([]Code, len(ordered))
	copy(out, ordered)
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if _, ok := statuses[c]; !ok {
		return nil, ErrCodeUnknown
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
