package seeder

import (
	"fmt"
	"strings"
)

type dependencyGraph struct {
	chunks map[string]Chunk
	names  []string
}

func newDependencyGraph(chunks []Chunk) (*dependencyGraph, error) {
	g := &dependencyGraph{chunks: make(map[string]Chunk, len(chunks))}
	for _, c := range chunks {
		if _, exists := g.chunks[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChunk, c.Name)
		}
		g.chunks[c.Name] = c
		g.names = append(g.names, c.Name)
	}
	for _, c := range chunks {
		for _, dep := range c.Dependencies {
			if _, ok := g.chunks[dep]; !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, c.Name, dep)
			}
		}
	}
	return g, nil
}

// order returns a topological order. Ties are broken by declaration order,
// so the same registry always yields the same plan.
func (g *dependencyGraph) order() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var path []string
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			cycle := append(path[indexOf(path, name):], name)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " → "))
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		path = append(path, name)
		for _, dep := range g.chunks[name].Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func indexOf(items []string, s string) int {
	for i, item := range items {
		if item == s {
			return i
		}
	}
	return 0
}
