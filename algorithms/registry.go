package algorithms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/graphplay/bfs"
	"github.com/katalvlaran/graphplay/dfs"
	"github.com/katalvlaran/graphplay/dijkstra"
	"github.com/katalvlaran/graphplay/trace"
)

// Sentinel errors for registry lookups.
var (
	// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrDuplicateName is returned by Register when the name is taken.
	ErrDuplicateName = errors.New("algorithms: name already registered")
)

// Registered names.
const (
	BFS      = "bfs"
	DFS      = "dfs"
	Dijkstra = "dijkstra"
)

var (
	mu       sync.RWMutex
	registry = map[string]trace.Generator{
		BFS:      bfs.Generator(),
		DFS:      dfs.Generator(),
		Dijkstra: dijkstra.Generator(),
	}
)

// Lookup returns the generator registered under name (case-insensitive).
func Lookup(name string) (trace.Generator, error) {
	mu.RLock()
	defer mu.RUnlock()
	gen, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAlgorithm, name, strings.Join(namesLocked(), ", "))
	}

	return gen, nil
}

// Register adds gen under name. Names are stored lower-case.
func Register(name string, gen trace.Generator) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || gen == nil {
		return fmt.Errorf("%w: empty name or nil generator", ErrUnknownAlgorithm)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, taken := registry[key]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateName, key)
	}
	registry[key] = gen

	return nil
}

// Names lists the registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	return namesLocked()
}

func namesLocked() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
