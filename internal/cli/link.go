package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fpl/pkg/fpl"
	fplio "github.com/matzehuels/fpl/pkg/io"
)

// linkCommand prints the link pattern of a matrix.
func (c *CLI) linkCommand() *cobra.Command {
	var orientation string
	var asJSON, withPoints bool

	cmd := &cobra.Command{
		Use:     "link <matrix|file>",
		Short:   "Print the link pattern of a matrix",
		Example: `  fpl link "[[0,1,0],[1,-1,1],[0,1,0]]"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("orientation") {
				orientation = c.config.Orientation
			}
			g, err := loadGrid(args[0], orientation)
			if err != nil {
				return err
			}
			lp, err := fpl.ExtractLinkPattern(g)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("Traced %d strands", lp.Len())

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(lp)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, lp)
			if withPoints {
				for _, p := range fpl.BoundaryPoints(g) {
					printKeyValue(out, fmt.Sprint(p.Label), fmt.Sprintf("%s %d", p.Side, p.Index))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&orientation, "orientation", DefaultConfig().Orientation, "parity of the top-left vertex: even, odd")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the pairs as a JSON array")
	cmd.Flags().BoolVar(&withPoints, "points", false, "also list where each boundary point sits")

	return cmd
}

// loadGrid resolves a matrix literal or file and builds its grid.
func loadGrid(arg, orientation string) (*fpl.Grid, error) {
	doc, err := fplio.Load(arg)
	if err != nil {
		return nil, err
	}
	return doc.Grid(orientation)
}
