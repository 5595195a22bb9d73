package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/relclosure/relation"
)

// Printer writes human-readable output to one writer.
type Printer struct {
	w     io.Writer
	color bool

	title lipgloss.Style
	yes   lipgloss.Style
	no    lipgloss.Style
	dim   lipgloss.Style
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithColor toggles styled output. When false every style is a no-op.
func WithColor(on bool) PrinterOption {
	return func(p *Printer) { p.color = on }
}

// NewPrinter returns a Printer on w. Color is on by default; lipgloss still
// drops escape codes when w is not a terminal.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w, color: true}
	for _, fn := range opts {
		fn(p)
	}

	plain := lipgloss.NewStyle()
	p.title, p.yes, p.no, p.dim = plain, plain, plain, plain
	if p.color {
		r := lipgloss.NewRenderer(w)
		p.title = r.NewStyle().Bold(true)
		p.yes = r.NewStyle().Foreground(lipgloss.Color("10"))
		p.no = r.NewStyle().Foreground(lipgloss.Color("9"))
		p.dim = r.NewStyle().Faint(true)
	}

	return p
}

// Matrix writes m as a bordered 0/1 table with 1-based row and column headers.
func (p *Printer) Matrix(title string, m relation.Matrix) {
	fmt.Fprintf(p.w, "\n%s\n", p.title.Render("--- "+title+" ---"))
	n := 0
	if m != nil {
		n = m.Size()
	}
	if n == 0 {
		fmt.Fprintln(p.w, " (empty matrix)")
		return
	}
	fmt.Fprintln(p.w, MatrixTable(m))
}

// MatrixTable renders m as a table string without styling.
func MatrixTable(m relation.Matrix) string {
	n := m.Size()
	headers := make([]string, n+1)
	headers[0] = ""
	for j := 0; j < n; j++ {
		headers[j+1] = strconv.Itoa(j + 1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = strconv.Itoa(i + 1)
		for j := 0; j < n; j++ {
			if m.Has(i, j) {
				row[j+1] = "1"
			} else {
				row[j+1] = "0"
			}
		}
		t.Row(row...)
	}

	return t.String()
}

// Properties writes the O/X property lines: the three equivalence-defining
// properties first, then irreflexive and antisymmetric as extras.
func (p *Printer) Properties(heading string, props relation.Properties) {
	fmt.Fprintf(p.w, "\n%s\n", p.title.Render("["+heading+"]"))
	p.flag("Reflexive", props.Reflexive)
	p.flag("Symmetric", props.Symmetric)
	p.flag("Transitive", props.Transitive)
	fmt.Fprintln(p.w, p.dim.Render("  --- additional properties ---"))
	p.flag("Irreflexive", props.Irreflexive)
	p.flag("Antisymmetric", props.Antisymmetric)
}

func (p *Printer) flag(name string, v bool) {
	mark := p.no.Render(Mark(v))
	if v {
		mark = p.yes.Render(Mark(v))
	}
	fmt.Fprintf(p.w, "  - %-14s: %s\n", name, mark)
}

// Mark returns "O" for true and "X" for false.
func Mark(v bool) string {
	if v {
		return "O"
	}

	return "X"
}

// Partition writes one line per class with 1-based labels.
func (p *Printer) Partition(part relation.Partition) {
	fmt.Fprintf(p.w, "\n%s\n", p.title.Render("[Equivalence classes]"))
	for _, cl := range part {
		fmt.Fprintf(p.w, "  - class containing element %d: %s\n", cl.Seed+1, Labels(cl.Members))
	}
}

// Labels renders 0-based members as a 1-based list: "[1, 2, 3]".
func Labels(members []int) string {
	parts := make([]string, len(members))
	for k, v := range members {
		parts[k] = strconv.Itoa(v + 1)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Line writes s followed by a newline.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Verdict writes a highlighted ">>> " line.
func (p *Printer) Verdict(s string) {
	fmt.Fprintln(p.w, p.title.Render(">>> "+s))
}
