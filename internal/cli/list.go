package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
)

// listEntry is one line of list output.
type listEntry struct {
	Matrix      *asm.Matrix      `json:"matrix"`
	LinkPattern *fpl.LinkPattern `json:"link_pattern"`
}

// listCommand prints every matrix of an order with its link pattern.
func (c *CLI) listCommand() *cobra.Command {
	var orientation string
	var asJSON bool
	var workers int

	cmd := &cobra.Command{
		Use:     "list <n>",
		Short:   "List every alternating sign matrix of order n with its link pattern",
		Example: `  fpl list 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "order %q", args[0])
			}
			if !cmd.Flags().Changed("orientation") {
				orientation = c.config.Orientation
			}
			o, err := fpl.ParseOrientation(orientation)
			if err != nil {
				return err
			}
			entries, err := listPatterns(cmd.Context(), n, o, workers)
			if err != nil {
				return err
			}
			return printList(cmd.OutOrStdout(), entries, asJSON)
		},
	}

	cmd.Flags().StringVar(&orientation, "orientation", DefaultConfig().Orientation, "parity of the top-left vertex: even, odd")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per line")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "number of concurrent extractions")

	return cmd
}

// listPatterns extracts the link pattern of every matrix of order n, in
// enumeration order. Each worker writes only its own slot of the result.
func listPatterns(ctx context.Context, n int, o fpl.Orientation, workers int) ([]listEntry, error) {
	if err := errors.ValidateOrder(n, maxListOrder); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	prog := newProgress(loggerFromContext(ctx))

	matrices := asm.All(n)
	entries := make([]listEntry, len(matrices))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, m := range matrices {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lp, err := fpl.ExtractLinkPattern(fpl.FromMatrix(m, fpl.WithOrientation(o)))
			if err != nil {
				return fmt.Errorf("matrix %d: %w", i+1, err)
			}
			entries[i] = listEntry{Matrix: m, LinkPattern: lp}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Listed %d matrices of order %d", len(entries), n))
	return entries, nil
}

func printList(w io.Writer, entries []listEntry, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	}

	distinct := make(map[string]int)
	for i, e := range entries {
		key := e.LinkPattern.String()
		distinct[key]++
		fmt.Fprintf(w, "%s  %s  %s\n", StyleNumber.Render(fmt.Sprintf("%4d", i+1)), e.Matrix.Literal(), key)
	}
	printStats(w, fmt.Sprintf("%d matrices", len(entries)), fmt.Sprintf("%d link patterns", len(distinct)))
	return nil
}
