package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
)

var (
	browseDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	browseHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	browsePanelStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand pages through every matrix of an order in a terminal UI.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <n>",
		Short: "Page through every alternating sign matrix of order n and its loops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "order %q", args[0])
			}
			if err := errors.ValidateOrder(n, maxListOrder); err != nil {
				return err
			}
			o, err := fpl.ParseOrientation(c.config.Orientation)
			if err != nil {
				return err
			}
			model := NewBrowseModel(asm.All(n), o)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// BrowseModel - Interactive matrix browser
// =============================================================================

// BrowseModel is the bubbletea model for paging through matrices.
type BrowseModel struct {
	Matrices    []*asm.Matrix
	Cursor      int
	Orientation fpl.Orientation
}

// NewBrowseModel creates a browser positioned at the first matrix.
func NewBrowseModel(matrices []*asm.Matrix, o fpl.Orientation) BrowseModel {
	return BrowseModel{Matrices: matrices, Orientation: o}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "up", "h", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "right", "down", "l", "j", " ":
		if m.Cursor < len(m.Matrices)-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = len(m.Matrices) - 1
	case "o":
		if m.Orientation == fpl.TopLeftEven {
			m.Orientation = fpl.TopLeftOdd
		} else {
			m.Orientation = fpl.TopLeftEven
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Matrix %d of %d", m.Cursor+1, len(m.Matrices))))
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  (%s orientation)", m.Orientation)))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("←/→ page  o orientation  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Matrices) == 0 {
		return b.String()
	}

	g := fpl.FromMatrix(m.Matrices[m.Cursor], fpl.WithOrientation(m.Orientation))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		browsePanelStyle.Render(g.ToMatrix().String()),
		" ",
		browsePanelStyle.Render(fpl.RenderText(g)),
		" ",
		linkTable(g),
	))
	b.WriteString("\n")
	return b.String()
}

// linkTable renders the link pattern of g as a table of pairs.
func linkTable(g *fpl.Grid) string {
	lp, err := fpl.ExtractLinkPattern(g)
	if err != nil {
		return StyleWarning.Render(errors.UserMessage(err))
	}

	points := fpl.BoundaryPoints(g)
	where := func(label int) string {
		p := points[label-1]
		return fmt.Sprintf("%s %d", p.Side, p.Index)
	}

	rows := make([][]string, 0, lp.Len())
	for _, p := range lp.Pairs() {
		rows = append(rows, []string{strconv.Itoa(p.A), where(p.A), strconv.Itoa(p.B), where(p.B)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("a", "at", "b", "at").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return browseHeaderStyle
			}
			if col%2 == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return browseDimStyle
		}).
		Render()
}
