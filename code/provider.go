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

import "dirpx.dev/errticket/apis"

// Provider resolves builtin codes for the "default" group.
type Provider struct{}

var (
	_ apis.Provider = Provider{}
	_ apis.Lister   = Provider{}
)

// Group implements apis.Provider.
func (Provider) Group() string { return Group }

// ValueOf implements apis.Provider.
func (Provider) ValueOf(name string) (apis.ErrorCode, bool) {
	c, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return c, true
}

// Codes implements apis.Lister.
func (Provider) Codes() []apis.ErrorCode {
	out := make([]apis.ErrorCode, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c)
	}
	return out
}
