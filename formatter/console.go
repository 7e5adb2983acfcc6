package formatter

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecameron545/optbst"
	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// NodeClass identifies the visual classes of a tree listing. Palettes map
// node classes to colors.
type NodeClass int8

const (
	// KeyClass colors the key of a real node.
	KeyClass NodeClass = iota
	// ValueClass colors the value of a real node.
	ValueClass
	// SentinelClass colors the marker printed for empty child slots.
	SentinelClass
)

// sentinelMark is printed for every empty child slot.
const sentinelMark = "·"

// Config holds parameters for rendering a tree listing.
type Config struct {
	// LineWidth is the target line length in fixed-width character positions;
	// longer lines are clipped.
	LineWidth int
	// Context is the UAX#11 context used to measure display widths. It is
	// safe to leave it nil; in this case uax11.LatinContext is used.
	Context *uax11.Context
}

// ConsoleTree is a renderer for tree listings on consoles with a fixed width
// font.
type ConsoleTree struct {
	colors map[NodeClass]*color.Color
}

// NewConsoleTree creates a new renderer.
//
// colors maps node classes to colors used for display. It may cover just a
// subset of the classes; uncovered classes print unstyled. A nil map selects
// a default palette.
func NewConsoleTree(colors map[NodeClass]*color.Color) *ConsoleTree {
	ct := &ConsoleTree{}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[NodeClass]*color.Color {
	palette := map[NodeClass]*color.Color{
		KeyClass:      color.New(color.FgBlue, color.Bold),
		ValueClass:    color.New(color.FgGreen),
		SentinelClass: color.New(color.FgHiBlack),
	}
	return palette
}

// Print outputs a tree listing to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (ct *ConsoleTree) Print(tree optbst.Tree) error {
	return ct.Write(os.Stdout, tree, nil)
}

// Write outputs a tree listing to w. A nil config is derived from the
// terminal.
func (ct *ConsoleTree) Write(w io.Writer, tree optbst.Tree, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return ct.writeNode(w, tree.Root(), "", "", config)
}

// writeNode prints node on one line and recurses into its children. head is
// the already-assembled branch prefix for this line, rest the prefix for the
// node's subtree lines.
func (ct *ConsoleTree) writeNode(w io.Writer, node *optbst.Node, head, rest string, config *Config) error {
	if node.IsSentinel() {
		_, err := fmt.Fprintf(w, "%s%s\n", head, ct.styled(SentinelClass, sentinelMark))
		return err
	}
	used := stringWidth(head+node.Key(), config.Context) + 3 // 3 en for " = "
	label := ct.styled(KeyClass, node.Key()) + " = " +
		ct.styled(ValueClass, clip(node.Value(), config.LineWidth-used, config.Context))
	if _, err := fmt.Fprintf(w, "%s%s\n", head, label); err != nil {
		return err
	}
	if err := ct.writeNode(w, node.Left(), rest+"├── ", rest+"│   ", config); err != nil {
		return err
	}
	return ct.writeNode(w, node.Right(), rest+"└── ", rest+"    ", config)
}

// styled wraps s in the color for the given class, if the palette covers it.
func (ct *ConsoleTree) styled(class NodeClass, s string) string {
	if c, ok := ct.colors[class]; ok {
		return c.Sprint(s)
	}
	return s
}

// stringWidth measures the display width of s in fixed-width character
// positions (“en”s).
func stringWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// clip shortens s to at most width display columns. Cuts happen on grapheme
// boundaries only, so clipping never produces invalid UTF-8 or a torn
// combining sequence; a clipped value ends in an ellipsis.
func clip(s string, width int, context *uax11.Context) string {
	if width < 4 {
		width = 4
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	var bf strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := stringWidth(g, context)
		if used+w > width-1 {
			break
		}
		bf.WriteString(g)
		used += w
	}
	return bf.String() + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Config.Context
// is created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{}
	config.Context = uax11.ContextFromEnvironment()
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
