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

// Package errticket turns failures into error tickets: immutable,
// serializable values compatible with RFC 7807 (Problem Details) and
// RFC 6749 §5.2 (OAuth 2.0 error responses).
//
// A ticket carries:
//   - an opaque correlation id, generated when not supplied;
//   - a code resolved through a provider group (see package provider);
//   - human detail text and an optional HTTP status;
//   - the RFC 7807 type, title and instance members;
//   - free-form extensions merged into the wire payload.
//
// Tickets are built with a Builder, read back with Parse (strict) or
// FromMap (best-effort), and serialized with ToJSON. Propagate converts
// any error into a ticket at an API boundary:
//
//	t := errticket.New().
//		WithCode(code.NotFound).
//		WithDetails("missing item").
//		Build()
//
//	body, _ := json.Marshal(t)
//	// {"code":"NotFound","detail":"missing item","group":"default","id":"et…","status":404}
//
// # Groups
//
// Build fills an empty group from the code, so every ticket with a code
// serializes a "group" member, builtin codes included ("default"). A
// ticket built with only an oauth code therefore gets the RFC 6749
// projection (error, error_description, error_uri) and, for status 401,
// a Bearer challenge. Payloads keep the group so that strict Parse can
// resolve non-builtin codes on the way back. Set the group explicitly to
// project a code under another group.
package errticket
