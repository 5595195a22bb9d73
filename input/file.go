package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relclosure/relation"
)

// Document is the on-disk form of a relation. Exactly one of Rows or Pairs
// is used; Rows wins when both are present. Pairs are 1-based.
//
//	size: 3
//	rows:
//	  - [0, 1, 0]
//	  - [0, 0, 0]
//	  - [0, 0, 0]
//
// or
//
//	{"size": 3, "pairs": [[1, 2]]}
type Document struct {
	Size  int     `yaml:"size"`
	Rows  [][]int `yaml:"rows"`
	Pairs [][]int `yaml:"pairs"`
}

// LoadFile reads a relation from path. .yaml, .yml and .json are decoded as
// a Document; .txt is read as whitespace rows.
func LoadFile(path string) (*relation.Relation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inputErrorf("LoadFile", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return Decode(f)
	case ".txt":
		return ParseText(f, 0)
	default:
		return nil, inputErrorf("LoadFile", fmt.Errorf("%s: %w", filepath.Ext(path), ErrUnsupportedFormat))
	}
}

// Decode reads one YAML or JSON Document from r.
func Decode(r io.Reader) (*relation.Relation, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, inputErrorf("Decode", ErrEmptyDocument)
		}
		return nil, inputErrorf("Decode", err)
	}

	return doc.Relation()
}

// Relation validates the document and builds the relation it describes.
func (d Document) Relation() (*relation.Relation, error) {
	switch {
	case len(d.Rows) > 0:
		if d.Size != 0 && d.Size != len(d.Rows) {
			return nil, inputErrorf("Document", fmt.Errorf("size %d but %d rows: %w", d.Size, len(d.Rows), ErrInvalidSize))
		}
		rel, err := relation.FromBits(d.Rows)
		if err != nil {
			return nil, inputErrorf("Document", err)
		}
		return rel, nil

	case len(d.Pairs) > 0:
		if d.Size <= 0 {
			return nil, inputErrorf("Document", ErrInvalidSize)
		}
		pairs := make([]relation.Pair, 0, len(d.Pairs))
		for k, p := range d.Pairs {
			if len(p) != 2 {
				return nil, inputErrorf("Document", fmt.Errorf("pair %d has %d entries: %w", k+1, len(p), ErrWrongCount))
			}
			pairs = append(pairs, relation.Pair{I: p[0] - 1, J: p[1] - 1})
		}
		rel, err := relation.FromPairs(d.Size, pairs...)
		if err != nil {
			return nil, inputErrorf("Document", err)
		}
		return rel, nil

	default:
		return nil, inputErrorf("Document", ErrEmptyDocument)
	}
}

// ParseText reads whitespace-separated 0/1 rows, one per non-blank line.
// When n is 0 the size is taken from the first row. Unlike Reader, the first
// malformed row is an error, and so is any row after the n-th.
func ParseText(r io.Reader, n int) (*relation.Relation, error) {
	sc := bufio.NewScanner(r)
	var rows [][]bool
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if n == 0 {
			n = len(strings.Fields(text))
		}
		if len(rows) == n {
			return nil, inputErrorf("ParseText", fmt.Errorf("line %d: more than %d rows: %w", line, n, ErrInvalidSize))
		}
		row, err := ParseRow(text, n)
		if err != nil {
			return nil, inputErrorf("ParseText", fmt.Errorf("line %d: %w", line, err))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, inputErrorf("ParseText", err)
	}
	if n == 0 || len(rows) < n {
		return nil, inputErrorf("ParseText", ErrIncomplete)
	}

	rel, err := relation.FromRows(rows)
	if err != nil {
		return nil, inputErrorf("ParseText", err)
	}

	return rel, nil
}
