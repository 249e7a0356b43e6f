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
)

// Predicate reports whether a frame should be ignored.
type Predicate func(Frame) bool

// IgnoreClass ignores frames whose class contains a match of re.
func IgnoreClass(re *regexp.Regexp) Predicate {
	return func(f Frame) bool { return re.MatchString(f.Class) }
}

// IgnoreMethod ignores frames whose method contains a match of re.
func IgnoreMethod(re *regexp.Regexp) Predicate {
	return func(f Frame) bool { return re.MatchString(f.Method) }
}

// IgnoreFile ignores frames whose file path contains a match of re.
func IgnoreFile(re *regexp.Regexp) Predicate {
	return func(f Frame) bool { return re.MatchString(f.File) }
}

// IgnoreLine ignores frames at any of the given line numbers.
func IgnoreLine(lines ...int) Predicate {
	set := slices.Clone(lines)
	return func(f Frame) bool { return slices.Contains(set, f.Line) }
}

// IgnoreAll ignores every frame.
func IgnoreAll() Predicate {
	return func(Frame) bool { return true }
}
