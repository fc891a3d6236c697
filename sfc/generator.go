// Package sfc generates single-file component source text from a
// component snapshot: a template section holding the component's markup,
// a script section wiring props, store bindings and child components, and
// a scoped style section.
//
// Generation is a pure function of (registry, active component, options);
// writing the result to disk is a separate step (see WriteFile).
package sfc

import (
	"strings"

	"github.com/teranos/sfcgen/component"
)

// TypescriptOn is the only typed-variant flag value that enables it.
const TypescriptOn = "on"

// Default option values
const (
	DefaultExtension    = "vue"
	DefaultComponentDir = "@/components"
)

// Options controls the generated output.
type Options struct {
	// Typescript selects the typed variant of the script section
	Typescript bool
	// ComponentDir prefixes child component import paths
	ComponentDir string
	// Extension is the component file extension, without a dot
	Extension string
	// StrictRefs rejects bare tags that are not child components
	StrictRefs bool
}

// DefaultOptions returns untyped output with the conventional paths.
func DefaultOptions() Options {
	return Options{
		ComponentDir: DefaultComponentDir,
		Extension:    DefaultExtension,
	}
}

// TypescriptEnabled interprets the editor's typed-variant flag.
func TypescriptEnabled(flag string) bool {
	return flag == TypescriptOn
}

// ChildImportPath returns the import path for a child component.
func (o Options) ChildImportPath(name string) string {
	return strings.TrimSuffix(o.ComponentDir, "/") + "/" + name + "." + o.Extension
}

// Generator composes component files.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator, filling unset paths with defaults.
func NewGenerator(opts Options) *Generator {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.ComponentDir == "" {
		opts.ComponentDir = DefaultComponentDir
	}
	return &Generator{opts: opts}
}

// FileExtension returns the extension of generated files, without a dot.
func (g *Generator) FileExtension() string {
	return g.opts.Extension
}

// Generate composes the file text for the active component of reg.
// A missing component or an unknown element kind fails before any text is
// produced.
func (g *Generator) Generate(reg component.Registry, active string) (string, error) {
	node, err := reg.Get(active)
	if err != nil {
		return "", err
	}
	// The registry key names the component, as it names the file.
	named := *node
	named.Name = active
	return g.GenerateNode(&named)
}

// GenerateNode composes the file text for node: annotation, template,
// script, style, in that order, ending with a newline.
func (g *Generator) GenerateNode(node *component.Node) (string, error) {
	if g.opts.StrictRefs {
		if err := checkRefs(node, node.HTMLList); err != nil {
			return "", err
		}
	}

	markup, err := WriteMarkup(node.HTMLList)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(WriteAnnotation(node.NoteList))
	sb.WriteString(WriteTemplate(markup))
	sb.WriteString(PlanScript(node, g.opts).Render())
	sb.WriteString(WriteStyle())
	sb.WriteString("\n")
	return sb.String(), nil
}
