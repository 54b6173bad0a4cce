// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// depgraph orders the vertices of a dependency graph by strongly connected component.
package depgraph

import "sort"

// Graph is an adjacency list. An edge from a to b records that a depends on b.
type Graph [][]int

// New creates a graph with n vertices and no edges.
func New(n int) Graph { return Graph(make([][]int, n)) }

// DependsOn adds an edge from dependent to dependency, once.
func (g Graph) DependsOn(dependent, dependency int) {
	for _, succ := range g[dependent] {
		if succ == dependency {
			return
		}
	}
	g[dependent] = append(g[dependent], dependency)
}

// Components returns the strongly connected components of g, dependencies first. Vertices which
// depend on each other share a component. Each component lists its vertices in ascending order.
func (g Graph) Components() [][]int {
	s := tarjan{
		index: make([]int, len(g)),
		low:   make([]int, len(g)),
		on:    make([]bool, len(g)),
	}
	for v := range g {
		if s.index[v] == 0 {
			g.visit(&s, v)
		}
	}
	return s.sccs
}

// Order flattens Components into a single vertex order.
func (g Graph) Order() []int {
	order := make([]int, 0, len(g))
	for _, c := range g.Components() {
		order = append(order, c...)
	}
	return order
}

type tarjan struct {
	next  int
	index []int
	low   []int
	on    []bool
	stack []int
	sccs  [][]int
}

// Tarjan's algorithm emits a component only after every component it depends on.
func (g Graph) visit(s *tarjan, v int) {
	s.next++
	s.index[v] = s.next
	s.low[v] = s.next
	s.stack = append(s.stack, v)
	s.on[v] = true

	for _, succ := range g[v] {
		if s.index[succ] == 0 {
			g.visit(s, succ)
			s.low[v] = min(s.low[v], s.low[succ])
		} else if s.on[succ] {
			s.low[v] = min(s.low[v], s.index[succ])
		}
	}

	if s.low[v] != s.index[v] {
		return
	}
	var c []int
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.on[w] = false
		c = append(c, w)
		if w == v {
			break
		}
	}
	sort.Ints(c)
	s.sccs = append(s.sccs, c)
}
