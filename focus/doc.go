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

// Package focus trims stack traces down to the frames worth reading.
//
// A Focuser holds a set of ignore predicates over stack frames (by class,
// method, file or line). A frame is kept when no predicate matches it.
// Focusers are immutable and safe for concurrent use.
//
// Focus walks an error graph (the Unwrap cause chain plus suppressed
// errors) and returns a copy in which every traced node carries only the
// kept frames. Node types are preserved through the Cloner capability;
// nodes that cannot clone themselves are replaced with a *Focused wrapper
// that reports the original type name. FocusInPlace rewrites traces of
// nodes implementing TraceSetter instead of copying.
//
//	err := focus.Wrap(dbErr, "load order")
//	log.Error("request failed", "stack", focus.Default().Focus(err))
//
// Frame naming follows Go symbol names: for "net/http.(*conn).serve" the
// class is "net/http.(*conn)" and the method "serve".
package focus
