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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"dirpx.dev/errticket"
	"github.com/alitto/pond/v2"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	group   string
	lenient bool
	workers int
}

type parseResult struct {
	name   string
	ticket *errticket.Ticket
	err    error
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse [file|-]...",
		Short: "Validate ticket payloads and print their normalized form",
		Long: "Parse reads each payload strictly, failing on unknown groups or codes.\n" +
			"With --lenient unknown values degrade to undefined codes instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			results := parseAll(cmd, args, opts)

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", fail("✗"), r.name, r.err)
					continue
				}
				if err := printTicket(cmd.OutOrStdout(), r.name, r.ticket); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d payloads failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.group, "group", "", "Group assumed when a payload has none")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Accept unknown groups and codes")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Payloads parsed concurrently")
	return cmd
}

// parseAll parses every input on a worker pool and returns the results in
// argument order.
func parseAll(cmd *cobra.Command, names []string, opts parseOptions) []parseResult {
	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	pool := pond.NewPool(workers)

	results := make([]parseResult, len(names))
	for i, name := range names {
		results[i].name = name
		if name == "-" {
			// stdin is not safe to share between workers.
			results[i].ticket, results[i].err = parseOne(cmd, name, opts)
			continue
		}
		err := pool.Go(func() {
			results[i].ticket, results[i].err = parseOne(cmd, name, opts)
		})
		if err != nil {
			results[i].err = err
		}
	}
	pool.StopAndWait()
	return results
}

func parseOne(cmd *cobra.Command, name string, opts parseOptions) (*errticket.Ticket, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsing payload", slog.String("input", name), slog.Int("bytes", len(data)))
	return decodeTicket(data, opts.group, opts.lenient)
}

func decodeTicket(data []byte, group string, lenient bool) (*errticket.Ticket, error) {
	if !lenient {
		return errticket.Parse(data, group)
	}
	t := new(errticket.Ticket)
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return t, nil
}

func printTicket(w io.Writer, name string, t *errticket.Ticket) error {
	if t == nil {
		return errors.New("no ticket")
	}
	body, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	fmt.Fprintf(w, "%s %s\n", success("✓"), info(name))
	fmt.Fprintf(w, "Content-Type: %s\n", t.ContentType())

	h := t.Headers()
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			fmt.Fprintf(w, "%s: %s\n", k, warn(v))
		}
	}
	fmt.Fprintf(w, "%s\n", body)
	return nil
}
