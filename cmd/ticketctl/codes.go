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
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"dirpx.dev/errticket/adapter"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper"
	"dirpx.dev/errticket/provider"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
)

func newCodesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "codes [group]",
		Short: "List registered groups and their codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := provider.All()
			if len(args) == 1 {
				p, ok := provider.Get(args[0])
				if !ok {
					return fmt.Errorf("unknown group %q", args[0])
				}
				ps = []apis.Provider{p}
			}
			ds := adapter.DescribeAll(mapper.Default, ps)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ds)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GROUP\tCODE\tSUGGESTED\tHTTP\tGRPC")
			for _, d := range ds {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
					d.Group, d.Code, d.SuggestedStatus, d.HTTPStatus, codes.Code(d.GRPCCode))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print descriptors as JSON")
	return cmd
}
