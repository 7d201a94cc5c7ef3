package uibind

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// DumpComposite outputs the segment structure of a composite collection
// (for debugging purposes). Each line carries the flattened index of the
// item. Segments are colorized in rotation when w is an interactive
// terminal.
func DumpComposite[T comparable](w io.Writer, c *Composite[T]) {
	tree := treeprint.NewWithRoot(fmt.Sprintf("composite (%d)", c.Len()))
	palette := dumpPalette(w)
	offset := 0
	for k, seg := range c.segments {
		paint := palette[k%len(palette)].SprintfFunc()
		branch := tree.AddBranch(paint("segment #%d (%d) @%d", k, seg.Len(), offset))
		for j := 0; j < seg.Len(); j++ {
			v, err := seg.At(j)
			if err != nil {
				break
			}
			branch.AddNode(paint("[%d] %v", offset+j, v))
		}
		offset += seg.Len()
	}
	io.WriteString(w, tree.String())
}

// dumpPalette returns the rotation of segment colors. Colors degrade to
// plain text unless w is an interactive terminal.
func dumpPalette(w io.Writer) []*color.Color {
	palette := []*color.Color{
		color.New(color.FgCyan),
		color.New(color.FgYellow),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		for _, c := range palette {
			c.DisableColor()
		}
	}
	return palette
}
