package generate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samdwyer/mazeflood/internal/grid"
)

// ErrUnknownAlgorithm is returned by ByName for names that are not registered.
var ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

// Algorithm carves passages into g using src for every random decision.
type Algorithm func(g grid.Grid, src Source) grid.Grid

const (
	NameSidewinder = "sidewinder"
	NameBinaryTree = "binary-tree"
)

var algorithms = map[string]Algorithm{
	NameSidewinder: Sidewinder,
	NameBinaryTree: BinaryTree,
}

// ByName returns the algorithm registered under name.
func ByName(name string) (Algorithm, error) {
	alg, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, name, Names())
	}
	return alg, nil
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
