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

package errticket_test

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/oauth"
)

func ExampleBuilder() {
	t := errticket.New().
		WithID("etkobavu1").
		WithCode(code.NotFound).
		WithDetails("missing item").
		Build()

	b, _ := json.Marshal(t)
	fmt.Println(string(b))
	fmt.Println(t.ContentType())
	// Output:
	// {"code":"NotFound","detail":"missing item","group":"default","id":"etkobavu1","status":404}
	// application/json
}

func ExampleTicket_Headers() {
	t := errticket.New().
		WithCode(oauth.InvalidToken).
		WithDetails("token expired").
		Build()

	fmt.Println(t.Headers().Get(errticket.HeaderWWWAuthenticate))
	// Output:
	// Bearer error="invalid_token" error_description="token expired"
}
