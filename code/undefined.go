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
	"strconv"

	"dirpx.dev/errticket/apis"
)

// Undefined stands in for a code name that no known provider resolves.
//
// It keeps the raw name so that a ticket read from an upstream payload
// serializes back to the same "code" value. When the name is a plain
// decimal number without a leading zero (e.g. "404"), Status carries it as
// the suggested HTTP status.
type Undefined struct {
	Name      string
	GroupName string
	Status    int
}

var _ apis.ErrorCode = Undefined{}

// NewUndefined returns the fallback code for name within group.
func NewUndefined(name, group string) Undefined {
	u := Undefined{Name: name, GroupName: group}
	if digitsNoLeadingZero(name) {
		if n, err := strconv.Atoi(name); err == nil {
			u.Status = n
		}
	}
	return u
}

// Group implements apis.ErrorCode.
func (u Undefined) Group() string { return u.GroupName }

// StatusCode implements apis.ErrorCode.
func (u Undefined) StatusCode() int { return u.Status }

// String returns the raw name.
func (u Undefined) String() string { return u.Name }

// MarshalText writes the raw name, so Undefined round-trips as a plain string.
func (u Undefined) MarshalText() ([]byte, error) { return []byte(u.Name), nil }

func digitsNoLeadingZero(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
