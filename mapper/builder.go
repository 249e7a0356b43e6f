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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw dotted key prefix (may contain "*"); it is
	// normalized and validated when the trie is built.
	prefix string
	val    int
}

type builder struct {
	httpOverride map[string]int
	grpcOverride map[string]int
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// byStatus maps a resolved HTTP status to its gRPC code.
	byStatus map[int]int

	fallbackHTTP int
	fallbackGRPC codes.Code

	errs []error
}

func newBuilder() *builder {
	b := &builder{
		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),
		byStatus:     make(map[int]int, len(defaultGRPC)),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Unknown,
	}
	for k, v := range defaultGRPC {
		b.byStatus[k] = int(v)
	}
	return b
}
