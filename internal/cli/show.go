package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fpl/pkg/fpl"
)

// showCommand prints every view of a matrix at once.
func (c *CLI) showCommand() *cobra.Command {
	var orientation string

	cmd := &cobra.Command{
		Use:   "show <matrix|file>",
		Short: "Print the matrix, its six-vertex arrows, its loops and its link pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("orientation") {
				orientation = c.config.Orientation
			}
			g, err := loadGrid(args[0], orientation)
			if err != nil {
				return err
			}
			return showGrid(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().StringVar(&orientation, "orientation", DefaultConfig().Orientation, "parity of the top-left vertex: even, odd")

	return cmd
}

func showGrid(w io.Writer, g *fpl.Grid) error {
	lp, err := fpl.ExtractLinkPattern(g)
	if err != nil {
		return err
	}
	m := g.ToMatrix()

	printKeyValue(w, "size", fmt.Sprint(g.Size()))
	printKeyValue(w, "orientation", g.Orientation().String())
	printKeyValue(w, "negatives", fmt.Sprint(m.CountNegative()))
	printKeyValue(w, "link", lp.String())
	fmt.Fprintln(w)

	printTitle(w, "Matrix")
	printDiagram(w, m.String())
	printTitle(w, "Six-vertex configuration")
	printDiagram(w, g.Configuration().String())
	printTitle(w, "Fully packed loops")
	printDiagram(w, fpl.RenderText(g))
	return nil
}
