package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/relclosure/analysis"
	"github.com/katalvlaran/relclosure/relation"
)

// ReportDoc is the machine-readable form of an analysis.Report.
// Matrices are 0/1 rows; classes use 1-based labels.
type ReportDoc struct {
	ID                 string              `json:"id"`
	Size               int                 `json:"size"`
	Original           [][]int             `json:"original"`
	Initial            relation.Properties `json:"initial"`
	AlreadyEquivalence bool                `json:"already_equivalence"`
	Steps              []StepDoc           `json:"steps,omitempty"`
	Closure            [][]int             `json:"closure"`
	Final              relation.Properties `json:"final"`
	Classes            [][]int             `json:"classes"`
	Trace              []string            `json:"trace"`
}

// StepDoc is the machine-readable form of an analysis.Step.
type StepDoc struct {
	Stage    string  `json:"stage"`
	Required bool    `json:"required"`
	Changed  bool    `json:"changed"`
	Added    int     `json:"added"`
	Result   [][]int `json:"result"`
}

// NewReportDoc converts rep into its document form.
func NewReportDoc(rep *analysis.Report) ReportDoc {
	doc := ReportDoc{
		ID:                 rep.ID,
		Size:               rep.Size,
		Original:           rep.Original.Bits(),
		Initial:            rep.Initial,
		AlreadyEquivalence: rep.AlreadyEquivalence,
		Closure:            rep.Closure.Bits(),
		Final:              rep.Final,
		Classes:            rep.Partition.Labels(),
	}
	for _, st := range rep.Steps {
		doc.Steps = append(doc.Steps, StepDoc{
			Stage:    string(st.Stage),
			Required: st.Required,
			Changed:  st.Changed,
			Added:    st.Added,
			Result:   st.After.Bits(),
		})
	}
	for _, s := range rep.Trace {
		doc.Trace = append(doc.Trace, string(s))
	}

	return doc
}

// Report writes rep to w in the requested format.
func Report(w io.Writer, rep *analysis.Report, f Format, opts ...PrinterOption) error {
	switch f {
	case FormatText, "":
		NewPrinter(w, opts...).Report(rep)
		return nil
	default:
		return Encode(w, f, NewReportDoc(rep))
	}
}

// Encode writes v to w as YAML or JSON. FormatText has no generic encoding
// and yields ErrUnknownFormat like any other unsupported value.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("render.Encode: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("render.Encode: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return fmt.Errorf("render.Encode: %q: %w", f, ErrUnknownFormat)
	}
}

// stepText holds the headings of one closure stage.
type stepText struct {
	heading   string
	beforeTag string
	afterTag  string
	satisfied string
}

var stepTexts = map[analysis.Stage]stepText{
	analysis.StageCloseReflexive: {
		heading:   "=== 1. Reflexive closure ===",
		beforeTag: "R",
		afterTag:  "r(R)",
		satisfied: "already reflexive; no transformation needed.",
	},
	analysis.StageCloseSymmetric: {
		heading:   "=== 2. Symmetric closure ===",
		beforeTag: "r(R)",
		afterTag:  "s(r(R))",
		satisfied: "the reflexive closure is already symmetric; no transformation needed.",
	},
	analysis.StageCloseTransitive: {
		heading:   "=== 3. Transitive closure ===",
		beforeTag: "s(r(R))",
		afterTag:  "t(s(r(R)))",
		satisfied: "the symmetric closure is already transitive; no transformation needed.",
	},
}

// Report writes the full narrative of one analysis run.
func (p *Printer) Report(rep *analysis.Report) {
	rule := strings.Repeat("-", 30)
	banner := strings.Repeat("=", 30)

	p.Matrix("Original relation R", rep.Original)
	p.Properties("Relation properties", rep.Initial)
	p.Line(rule)

	if rep.AlreadyEquivalence {
		p.Verdict("Verdict: R is an equivalence relation.")
		p.Partition(rep.Partition)
		return
	}

	p.Verdict("Verdict: R is not an equivalence relation.")
	p.Line("Computing the equivalence closure of R.")

	for _, st := range rep.Steps {
		txt := stepTexts[st.Stage]
		p.Line("")
		p.Line(p.title.Render(txt.heading))
		if !st.Required {
			p.Line("  - " + txt.satisfied)
			continue
		}
		p.Line("  [before]")
		p.Matrix(txt.beforeTag, st.Before)
		p.Line("  [after]")
		p.Matrix(txt.afterTag, st.After)
	}

	p.Line("")
	p.Line(banner)
	p.Line("  Equivalence closure: t(s(r(R)))")
	p.Line(banner)
	p.Matrix("Equivalence closure", rep.Closure)
	p.Properties("Properties of the equivalence closure", rep.Final)

	if rep.Final.IsEquivalence() {
		p.Verdict("Verdict: the closure is an equivalence relation.")
		p.Partition(rep.Partition)
		return
	}
	p.Verdict("[error] the closure is not an equivalence relation.")
}
