package tree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DumpOptions controls the diagnostic rendering of a tree.
type DumpOptions struct {
	// TabWidth is the number of indent characters per nesting level.
	TabWidth int
	// ShowTypes appends "::kind()" to every key.
	ShowTypes bool
	// ShowBraces wraps child blocks in "{" and "}".
	ShowBraces bool
	// IndentChar defaults to a space.
	IndentChar byte
	// Indent is the starting nesting level.
	Indent int
}

// DefaultDumpOptions returns two-space indentation with types and no braces.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{TabWidth: 2, ShowTypes: true, ShowBraces: false, IndentChar: ' ', Indent: 0}
}

// Dump writes an indented, type-annotated rendering of the tree to w. Sibling
// values are column-aligned by the widest key. The output is for diagnostics
// and is not meant to be parsed back.
func (n *Node) Dump(w io.Writer, opts DumpOptions) error {
	if opts.IndentChar == 0 {
		opts.IndentChar = ' '
	}

	var buf bytes.Buffer

	if n.rootPath != "" {
		buf.WriteString(opts.indent(opts.Indent))
		fmt.Fprintf(&buf, "[Path: %s]\n", n.rootPath)
	}

	dumpChildren(&buf, n, opts, opts.Indent)

	_, err := w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}

	return nil
}

// Format renders the tree to a string.
func (n *Node) Format(tabWidth int, showTypes, showBraces bool) string {
	var sb strings.Builder

	_ = n.Dump(&sb, DumpOptions{
		TabWidth:   tabWidth,
		ShowTypes:  showTypes,
		ShowBraces: showBraces,
		IndentChar: ' ',
		Indent:     0,
	})

	return sb.String()
}

// String renders the tree with types and braces.
func (n *Node) String() string {
	return n.Format(2, true, true)
}

func (o DumpOptions) indent(level int) string {
	if level <= 0 || o.TabWidth <= 0 {
		return ""
	}

	return strings.Repeat(string(o.IndentChar), level*o.TabWidth)
}

func dumpChildren(buf *bytes.Buffer, n *Node, opts DumpOptions, level int) {
	width := 0

	for _, c := range n.children {
		width = max(width, labelWidth(c, opts.ShowTypes))
	}

	width++

	for _, c := range n.children {
		buf.WriteString(opts.indent(level))
		buf.WriteString(keyText(c.Name))

		if opts.ShowTypes {
			buf.WriteString(typeText(c.Node))
		}

		if !c.Node.value.IsNull() {
			buf.WriteString(strings.Repeat(" ", width-labelWidth(c, opts.ShowTypes)))
			buf.WriteString("= ")
			buf.WriteString(c.Node.value.Quoted())
		}

		if len(c.Node.children) == 0 {
			buf.WriteByte('\n')

			continue
		}

		if opts.ShowBraces {
			buf.WriteString(" {")
		}

		buf.WriteByte('\n')
		dumpChildren(buf, c.Node, opts, level+1)

		if opts.ShowBraces {
			buf.WriteString(opts.indent(level))
			buf.WriteString("}\n")
		}
	}
}

func labelWidth(c Child, showTypes bool) int {
	w := runewidth.StringWidth(keyText(c.Name))
	if showTypes {
		w += len(typeText(c.Node))
	}

	return w
}

func typeText(n *Node) string {
	return "::" + n.value.TypeName() + "()"
}

func keyText(name string) string {
	if isSimpleKey(name) {
		return name
	}

	return strconv.Quote(name)
}

func isSimpleKey(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}

		switch r {
		case '_', '-', '.':
			continue
		}

		return false
	}

	return true
}
