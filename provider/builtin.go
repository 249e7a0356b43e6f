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

package provider

import (
	"sync"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/oauth"
)

var (
	declMu   sync.Mutex
	declared []apis.Provider
)

// Builtin returns the providers shipped with the library.
func Builtin() []apis.Provider {
	return []apis.Provider{code.Provider{}, oauth.Provider{}}
}

// Declare adds p to the static table Default loads from. Call it from an
// init function; providers declared after Default was loaded show up after
// the next Unload.
func Declare(p apis.Provider) {
	declMu.Lock()
	defer declMu.Unlock()
	declared = append(declared, p)
}

// Declared returns Builtin followed by every declared provider.
func Declared() []apis.Provider {
	declMu.Lock()
	defer declMu.Unlock()
	out := Builtin()
	return append(out, declared...)
}

// Default is the process-wide registry.
var Default = New(WithLoader(Declared))

// Get looks up group in Default.
func Get(group string) (apis.Provider, bool) { return Default.Get(group) }

// All lists the providers of Default.
func All() []apis.Provider { return Default.All() }
