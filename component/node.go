// Package component holds the snapshot of UI components the visual editor
// hands over for export: the registry, each component's visual tree and
// bindings, and the loaders that read a snapshot from disk.
package component

import (
	"sort"

	"github.com/teranos/sfcgen/errors"
)

// VisualNode is one entry in a component's rendered-element tree.
// The set of implementations is closed: ComponentRef and *Element.
type VisualNode interface {
	isVisualNode()
}

// ComponentRef is a bare tag: a reference to a nested component,
// rendered as a self-closing element.
type ComponentRef string

func (ComponentRef) isVisualNode() {}

// Element is a catalog-backed element with nested children.
// Kind must name an entry of the element catalog.
type Element struct {
	Kind     string   `json:"text" yaml:"text" toml:"text"`
	Children NodeList `json:"children" yaml:"children" toml:"children"`
}

func (*Element) isVisualNode() {}

// NodeList is an ordered sequence of visual nodes. Order is rendering order.
type NodeList []VisualNode

// Depth returns the depth of the deepest node, counting top-level nodes as 1.
// An empty list has depth 0.
func (l NodeList) Depth() int {
	max := 0
	for _, n := range l {
		d := 1
		if el, ok := n.(*Element); ok {
			d += el.Children.Depth()
		}
		if d > max {
			max = d
		}
	}
	return max
}

// Node describes one exportable component.
type Node struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	HTMLList NodeList `json:"htmlList" yaml:"htmlList" toml:"htmlList"`
	Children []string `json:"children" yaml:"children" toml:"children"`
	Props    []string `json:"props" yaml:"props" toml:"props"`
	State    []string `json:"state" yaml:"state" toml:"state"`
	Actions  []string `json:"actions" yaml:"actions" toml:"actions"`
	NoteList []string `json:"noteList" yaml:"noteList" toml:"noteList"`
}

// HasChild reports whether name is one of the node's child components.
func (n *Node) HasChild(name string) bool {
	for _, c := range n.Children {
		if c == name {
			return true
		}
	}
	return false
}

// Registry maps component names to their nodes.
type Registry map[string]*Node

// Get returns the named component, or a not-found lookup error.
func (r Registry) Get(name string) (*Node, error) {
	if node, ok := r[name]; ok && node != nil {
		return node, nil
	}
	err := errors.NewNotFoundError("component %q is not in the registry", name)
	if names := r.Names(); len(names) > 0 {
		err = errors.WithHintf(err, "known components: %v", names)
	}
	return nil, err
}

// Names returns the registered component names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot is the state the visual editor exports: every component,
// which one is active, and the typed-variant toggle.
type Snapshot struct {
	ComponentMap       Registry `json:"componentMap" yaml:"componentMap" toml:"componentMap"`
	ActiveComponent    string   `json:"activeComponent" yaml:"activeComponent" toml:"activeComponent"`
	ExportAsTypescript string   `json:"exportAsTypescript" yaml:"exportAsTypescript" toml:"exportAsTypescript"`
}

// normalize fills in names omitted from map entries.
func (s *Snapshot) normalize() {
	for key, node := range s.ComponentMap {
		if node != nil && node.Name == "" {
			node.Name = key
		}
	}
}
