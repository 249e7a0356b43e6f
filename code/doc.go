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

// Package code defines the builtin, general-purpose error codes of the
// "default" group and the Undefined fallback used when a serialized code
// name cannot be resolved.
//
// Builtin codes are plain string constants carrying their wire name, e.g.
// code.NotFound == "NotFound". Every builtin code suggests an HTTP status
// (code.NotFound.StatusCode() == 404) that tickets inherit when no explicit
// status is given.
//
// Use Lookup to resolve a wire name against the builtin set only, and
// Provider to expose the set to a provider registry.
package code
