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

// Package grpcx converts error tickets to and from gRPC statuses.
//
// Server interceptors turn any handler error into a status whose code comes
// from an apis.Mapper and whose single detail is the ticket payload as a
// google.protobuf.Struct. Clients recover the ticket with ExtractTicket.
package grpcx

import (
	"context"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// grpcStatus is implemented by errors that already carry a gRPC status.
type grpcStatus interface {
	GRPCStatus() *gstatus.Status
}

// ToStatus converts a ticket into a gRPC status using m (nil means
// mapper.Default). The ticket payload is attached as a structpb.Struct
// detail; when it cannot be encoded the bare status is returned.
func ToStatus(t *errticket.Ticket, m apis.Mapper) *gstatus.Status {
	if m == nil {
		m = mapper.Default
	}
	base := gstatus.New(m.GRPCStatus(t), message(t))

	detail, err := Detail(t)
	if err != nil {
		return base
	}
	if with, err := base.WithDetails(detail); err == nil {
		return with
	}
	return base
}

// Detail encodes the ticket payload as a structpb.Struct.
func Detail(t *errticket.Ticket) (*structpb.Struct, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ToError converts err into a gRPC status error. Errors that already carry
// a gRPC status pass through unchanged; anything else is propagated to a
// ticket first.
func ToError(err error, m apis.Mapper) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(grpcStatus); ok {
		return err
	}
	return ToStatus(errticket.Propagate(err), m).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into ticket-carrying statuses.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, ToError(err, m)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return ToError(handler(srv, ss), m)
	}
}

// ExtractTicket pulls the ticket out of a gRPC error, if present. The
// payload is read best-effort, so unknown groups or codes degrade to
// undefined codes instead of failing.
func ExtractTicket(err error) (*errticket.Ticket, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	s, ok := findStruct(st.Proto().GetDetails())
	if !ok {
		return nil, false
	}
	return errticket.FromMap(s.AsMap()), true
}

func findStruct(details []*anypb.Any) (*structpb.Struct, bool) {
	for _, a := range details {
		if !a.MessageIs(&structpb.Struct{}) {
			continue
		}
		s := &structpb.Struct{}
		if err := a.UnmarshalTo(s); err == nil {
			return s, true
		}
	}
	return nil, false
}

func message(t *errticket.Ticket) string {
	if d := t.Details(); d != "" {
		return d
	}
	if c := t.Code(); c != nil {
		return c.String()
	}
	return "unknown error"
}
