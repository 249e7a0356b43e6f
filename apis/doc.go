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

// Package apis defines the public Go-level contracts for error tickets.
//
// The goal of this package is to provide *small, composable* interfaces that
// code sets, provider registries, transport mappers and the ticket protocol
// can depend on without importing one another.
//
// Concrete error codes (dirpx.dev/errticket/code, dirpx.dev/errticket/oauth
// or a caller's own set) implement ErrorCode. A Provider resolves the wire
// name of a code back to the value for one group. Transport layers (HTTP,
// gRPC) target Mapper.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and very small view types.
package apis
