package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
	fplio "github.com/matzehuels/fpl/pkg/io"
	"github.com/matzehuels/fpl/pkg/render"
	"github.com/matzehuels/fpl/pkg/render/nodelink"
)

const (
	typeLoops = "loops" // the fully packed loops themselves
	typeLink  = "link"  // chord diagram of the link pattern

	formatText = "text"
	formatSVG  = "svg"
	formatJSON = "json"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatDOT  = "dot"

	defaultPNGScale = 2.0
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatText: true, formatSVG: true, formatJSON: true,
	formatPDF: true, formatPNG: true, formatDOT: true,
}

// validTypes is the set of supported diagram types.
var validTypes = map[string]bool{typeLoops: true, typeLink: true}

// extensions maps formats to file extensions where they differ.
var extensions = map[string]string{formatText: "txt"}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string    // output file (single type/format) or base path
	vizTypes    []string  // diagram types: "loops", "link"
	formats     []string  // output formats
	orientation string    // "even" or "odd"
	svg         SVGConfig // SVG styling
	radius      float64   // chord diagram radius in inches
	pngScale    float64   // PNG resolution multiplier
}

// newRenderOpts returns render options seeded from cfg.
func newRenderOpts(cfg Config) renderOpts {
	return renderOpts{
		orientation: cfg.Orientation,
		svg:         cfg.SVG,
		pngScale:    defaultPNGScale,
	}
}

// renderCommand creates the render command. Flags left unset fall back to
// the config file.
func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	var flags renderOpts

	cmd := &cobra.Command{
		Use:   "render <matrix|file>",
		Short: "Draw the fully packed loops or the link pattern of a matrix",
		Example: `  fpl render "[[0,1,0],[1,-1,1],[0,1,0]]"
  fpl render asm.json -f svg,png -o loops
  fpl render "0 1 0; 1 -1 1; 0 1 0" -t link -f svg -o link.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := newRenderOpts(c.config)
			opts.output = flags.output
			opts.radius = flags.radius
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr, c.config.Format)
			applyFlags(cmd, &opts, &flags)
			if err := validateVizTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	defaults := DefaultConfig()
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single type/format) or base path (multiple); stdout for literals")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "diagram type(s): loops (default), link (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text, svg, json, pdf, png, dot (comma-separated)")
	cmd.Flags().StringVar(&flags.orientation, "orientation", defaults.Orientation, "parity of the top-left vertex: even, odd")
	cmd.Flags().Float64Var(&flags.svg.Scale, "scale", defaults.SVG.Scale, "lattice spacing in pixels")
	cmd.Flags().Float64Var(&flags.svg.Margin, "margin", defaults.SVG.Margin, "padding in pixels")
	cmd.Flags().StringVar(&flags.svg.Stroke, "stroke", defaults.SVG.Stroke, "line color")
	cmd.Flags().Float64Var(&flags.svg.StrokeWidth, "stroke-width", defaults.SVG.StrokeWidth, "line width in pixels")
	cmd.Flags().StringVar(&flags.svg.Background, "background", "", "background color (transparent if empty)")
	cmd.Flags().BoolVar(&flags.svg.Vertices, "vertices", false, "mark the grid vertices")
	cmd.Flags().Float64Var(&flags.radius, "radius", 0, "chord diagram radius in inches (link type)")
	cmd.Flags().Float64Var(&flags.pngScale, "png-scale", defaultPNGScale, "PNG resolution multiplier")

	return cmd
}

// applyFlags copies the flags the user set explicitly over opts.
func applyFlags(cmd *cobra.Command, opts, flags *renderOpts) {
	set := cmd.Flags().Changed
	if set("orientation") {
		opts.orientation = flags.orientation
	}
	if set("scale") {
		opts.svg.Scale = flags.svg.Scale
	}
	if set("margin") {
		opts.svg.Margin = flags.svg.Margin
	}
	if set("stroke") {
		opts.svg.Stroke = flags.svg.Stroke
	}
	if set("stroke-width") {
		opts.svg.StrokeWidth = flags.svg.StrokeWidth
	}
	if set("background") {
		opts.svg.Background = flags.svg.Background
	}
	if set("vertices") {
		opts.svg.Vertices = flags.svg.Vertices
	}
	if set("png-scale") {
		opts.pngScale = flags.pngScale
	}
}

// parseVizTypes parses the --type flag. If empty, defaults to ["loops"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{typeLoops}
	}
	return strings.Split(s, ",")
}

// parseFormats parses the --format flag. If empty, defaults to [fallback].
func parseFormats(s, fallback string) []string {
	if s == "" {
		return []string{fallback}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be text, svg, json, pdf, png or dot)", f)
		}
	}
	return nil
}

// validateVizTypes checks that all requested diagram types are valid.
func validateVizTypes(types []string) error {
	for _, t := range types {
		if !validTypes[t] {
			return errors.New(errors.ErrCodeInvalidInput, "invalid type: %s (must be loops or link)", t)
		}
	}
	return nil
}

// extension returns the file extension for format.
func extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return format
}

// isFile reports whether arg names an existing regular file.
func isFile(arg string) bool {
	info, err := os.Stat(arg)
	return err == nil && !info.IsDir()
}

// basePath derives the base output path from the output and input arguments.
// If output is empty, it strips the extension from an input file, or falls
// back to the application name for a matrix literal. Known format extensions
// are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if !isFile(input) {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if validFormats[ext] || ext == "txt" {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// runRender loads the input and renders every requested type and format.
func runRender(ctx context.Context, w io.Writer, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s", input)

	doc, err := fplio.Load(input)
	if err != nil {
		return err
	}
	g, err := doc.Grid(opts.orientation)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d×%d grid (%s orientation)", g.Size(), g.Size(), g.Orientation())

	if len(opts.vizTypes) == 1 && len(opts.formats) == 1 {
		return renderSingle(ctx, w, g, input, opts)
	}
	return renderMultiple(ctx, w, g, input, opts)
}

// renderSingle renders one type and format. Without -o, output for a file
// input goes next to the file and output for a literal goes to w.
func renderSingle(ctx context.Context, w io.Writer, g *fpl.Grid, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	vizType, format := opts.vizTypes[0], opts.formats[0]

	data, err := renderGrid(g, vizType, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	path := opts.output
	if path == "" && isFile(input) {
		path = basePath("", input) + "." + extension(format)
	}
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	return nil
}

// renderMultiple writes every type/format combination to its own file.
// Unsupported combinations such as loops/dot are skipped.
func renderMultiple(ctx context.Context, w io.Writer, g *fpl.Grid, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	base := basePath(opts.output, input)

	var written []string
	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			data, err := renderGrid(g, vizType, format, opts)
			if errors.Is(err, errors.ErrCodeUnsupported) {
				logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}

			path := fmt.Sprintf("%s.%s", base, extension(format))
			if len(opts.vizTypes) > 1 {
				path = fmt.Sprintf("%s_%s.%s", base, vizType, extension(format))
			}
			if err := writeFile(path, data); err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	printSuccess(w, "Wrote %d files", len(written))
	for _, p := range written {
		printFile(w, p)
	}
	return nil
}

// renderGrid produces one diagram of g. Combinations without a renderer
// return an [errors.ErrCodeUnsupported] error.
func renderGrid(g *fpl.Grid, vizType, format string, opts *renderOpts) ([]byte, error) {
	switch vizType {
	case typeLoops:
		return renderLoops(g, format, opts)
	case typeLink:
		return renderLink(g, format, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown diagram type: %s", vizType)
	}
}

// renderLoops draws the fully packed loops.
func renderLoops(g *fpl.Grid, format string, opts *renderOpts) ([]byte, error) {
	svgOpts := opts.svg.svgOptions(g.Size())
	switch format {
	case formatText:
		return []byte(fpl.RenderText(g) + "\n"), nil
	case formatJSON:
		return render.RenderJSON(g, render.WithJSONText())
	case formatSVG:
		return render.RenderSVG(fpl.RenderSegments(g), svgOpts...), nil
	case formatPDF:
		return render.RenderPDF(fpl.RenderSegments(g), render.WithPDFSVGOptions(svgOpts...))
	case formatPNG:
		return render.RenderPNG(fpl.RenderSegments(g),
			render.WithPNGSVGOptions(svgOpts...), render.WithPNGScale(opts.pngScale))
	case formatDOT:
		return nil, errors.New(errors.ErrCodeUnsupported, "loops cannot be written as %s", format)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown format: %s", format)
	}
}

// renderLink draws the link pattern as a chord diagram through Graphviz.
func renderLink(g *fpl.Grid, format string, opts *renderOpts) ([]byte, error) {
	lp, err := fpl.ExtractLinkPattern(g)
	if err != nil {
		return nil, err
	}

	switch format {
	case formatText:
		return []byte(lp.String() + "\n"), nil
	case formatJSON:
		return json.Marshal(lp)
	}

	dot := nodelink.ToDOT(lp, nodelink.Options{Radius: opts.radius, Points: fpl.BoundaryPoints(g)})
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return nodelink.RenderSVG(dot)
	case formatPDF:
		return nodelink.RenderPDF(dot)
	case formatPNG:
		return nodelink.RenderPNG(dot, opts.pngScale)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown format: %s", format)
	}
}

// writeFile writes data to path after validating it.
func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
