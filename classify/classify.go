// Package classify gives the builder a stable view over parse nodes: the
// kind of a node, whether it is a missing value, and its typed payload.
package classify

import (
	"github.com/programLyrique/analysr/errors"
	"github.com/programLyrique/analysr/types"
)

// Classify returns the kind of n. A nil node is NULL.
func Classify(n *types.Node) types.Kind {
	if n == nil {
		return types.Null
	}
	if _, ok := knownKinds[n.Kind]; !ok {
		return types.Other
	}
	return n.Kind
}

var knownKinds = map[types.Kind]struct{}{
	types.Integer:           {},
	types.Real:              {},
	types.String:            {},
	types.Logical:           {},
	types.Null:              {},
	types.Symbol:            {},
	types.Call:              {},
	types.ArgumentList:      {},
	types.StatementSequence: {},
}

// IsMissing reports whether n is an NA scalar, whatever its nominal kind.
func IsMissing(n *types.Node) bool {
	return Classify(n).IsScalar() && n.NA
}

func expect(n *types.Node, want types.Kind) error {
	if got := Classify(n); got != want {
		return errors.ExtractionError{Want: want, Got: got}
	}
	return nil
}

func AsInt(n *types.Node) (int64, error) {
	if err := expect(n, types.Integer); err != nil {
		return 0, err
	}
	return n.Int, nil
}

func AsReal(n *types.Node) (float64, error) {
	if err := expect(n, types.Real); err != nil {
		return 0, err
	}
	return n.Real, nil
}

func AsBool(n *types.Node) (bool, error) {
	if err := expect(n, types.Logical); err != nil {
		return false, err
	}
	return n.Bool, nil
}

func AsString(n *types.Node) (string, error) {
	if err := expect(n, types.String); err != nil {
		return "", err
	}
	return n.Str, nil
}

func AsSymbolText(n *types.Node) (string, error) {
	if err := expect(n, types.Symbol); err != nil {
		return "", err
	}
	return n.Text, nil
}

// Children returns the ordered children of a call, argument list or
// statement sequence.
func Children(n *types.Node) ([]*types.Node, error) {
	switch k := Classify(n); k {
	case types.Call, types.ArgumentList, types.StatementSequence:
		return n.Children, nil
	default:
		return nil, errors.ExtractionError{Want: types.Call, Got: k}
	}
}

// Tag returns the name n carries inside its parent.
func Tag(n *types.Node) string {
	if n == nil {
		return ""
	}
	return n.Tag
}

// Describe names the host type of an unsupported node for diagnostics.
func Describe(n *types.Node) string {
	if n == nil || n.Text == "" {
		return ""
	}
	if Classify(n) == types.Other {
		return n.Text
	}
	return ""
}
