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

// Package provider is the registry of error-code providers.
//
// A provider owns one group of codes ("default", "oauth", or an
// application-defined group). Group names are matched case-insensitively
// and at most one provider may own a group.
//
// The registry fills itself lazily from a loader the first time it is read
// while empty, and again after Unload. Loading is single-flight: concurrent
// readers wait for one load and never observe a partially built table.
//
// Default is the process-wide registry. It is loaded from Builtin plus every
// provider added with Declare:
//
//	func init() {
//		provider.Declare(billing.Provider{})
//	}
package provider
