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

package main

import (
	"fmt"

	"dirpx.dev/errticket/grpcx"
	"dirpx.dev/errticket/mapper"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newGRPCCmd() *cobra.Command {
	var (
		group   string
		lenient bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "grpc [file|-]",
		Short: "Show the gRPC status a ticket payload maps to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			data, err := readInput(cmd, name)
			if err != nil {
				return err
			}
			t, err := decodeTicket(data, group, lenient)
			if err != nil {
				return err
			}

			st := grpcx.ToStatus(t, mapper.Default)
			details, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st.Proto())
			if err != nil {
				return fmt.Errorf("encode status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s(%d)\n", info("code:"), st.Code(), int(st.Code()))
			fmt.Fprintf(out, "%s %s\n", info("message:"), st.Message())
			if explain {
				fmt.Fprintf(out, "%s\n%s\n", info("explain:"), mapper.Default.Explain(t))
			}
			fmt.Fprintf(out, "%s\n%s\n", info("status:"), details)
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Group assumed when the payload has none")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Accept unknown groups and codes")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print how the status was resolved")
	return cmd
}
