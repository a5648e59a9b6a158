// Package reader obtains parse trees from R's own parser, or from dumps of
// them saved as JSON or YAML.
package reader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"gopkg.in/yaml.v2"

	"github.com/programLyrique/analysr/errors"
	"github.com/programLyrique/analysr/types"
)

var plog = capnslog.NewPackageLogger("github.com/programLyrique/analysr", "reader")

//go:embed dump.R
var dumpScript string

type Options struct {
	// Rscript is the R front end to run; looked up in PATH when not absolute.
	Rscript string
}

// wireNode is the dump format shared by dump.R, JSON and YAML fixtures.
type wireNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Tag      string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	NA       bool        `json:"na,omitempty" yaml:"na,omitempty"`
	Int      int64       `json:"int,omitempty" yaml:"int,omitempty"`
	Real     float64     `json:"real,omitempty" yaml:"real,omitempty"`
	Str      string      `json:"str,omitempty" yaml:"str,omitempty"`
	Lgl      bool        `json:"lgl,omitempty" yaml:"lgl,omitempty"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*wireNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func (w *wireNode) node() *types.Node {
	if w == nil {
		return nil
	}

	n := &types.Node{
		Kind: types.ParseKind(w.Kind),
		Tag:  w.Tag,
		NA:   w.NA,
		Int:  w.Int,
		Real: w.Real,
		Str:  w.Str,
		Bool: w.Lgl,
		Text: w.Text,
	}

	switch n.Kind {
	case types.Other:
		if n.Text == "" {
			n.Text = w.Kind
		}
	case types.Real:
		// non-finite constants have no JSON number form
		switch w.Text {
		case "Inf":
			n.Real = math.Inf(1)
		case "-Inf":
			n.Real = math.Inf(-1)
		case "NaN":
			n.Real = math.NaN()
		}
	}

	if len(w.Children) > 0 {
		n.Children = make([]*types.Node, 0, len(w.Children))
		for _, c := range w.Children {
			n.Children = append(n.Children, c.node())
		}
	}
	return n
}

// Decode reads a JSON parse tree dump.
func Decode(data []byte) (*types.Node, error) {
	var w *wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding parse tree: %w", err)
	}
	return w.node(), nil
}

// DecodeYAML reads a parse tree dump written as YAML.
func DecodeYAML(data []byte) (*types.Node, error) {
	var w *wireNode
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding parse tree: %w", err)
	}
	return w.node(), nil
}

// ReadFile returns the parse tree for path. Dumps (.json, .yaml, .yml) are
// decoded; anything else is handed to R's parser.
func ReadFile(path string, opts Options) (*types.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return DecodeYAML(data)
	}

	return Parse(path, opts)
}

// Parse runs R's parser on the source file at path and decodes the result.
func Parse(path string, opts Options) (*types.Node, error) {
	rscript := opts.Rscript
	if rscript == "" {
		rscript = "Rscript"
	}

	fi, err := os.CreateTemp("", "analysr-*.R")
	if err != nil {
		return nil, err
	}
	defer os.Remove(fi.Name())
	defer fi.Close()

	if _, err := fi.WriteString(dumpScript); err != nil {
		return nil, err
	}
	if err := fi.Close(); err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(rscript, "--vanilla", fi.Name(), path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	plog.Debugf("running %s on %s", rscript, path)

	if err := cmd.Run(); err != nil {
		return nil, errors.HostParser{
			File:   path,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	if stderr.Len() > 0 {
		plog.Warningf("%s: %s", path, strings.TrimSpace(stderr.String()))
	}

	return Decode(stdout.Bytes())
}
