package sfc

import (
	"strings"

	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/errors"
)

const (
	// baseIndent places top-level nodes inside the template's root <div>
	baseIndent = "    "
	// indentStep is added per nesting level
	indentStep = "  "
)

// Indent returns the line prefix for nodes at depth (top level is 0).
func Indent(depth int) string {
	return baseIndent + strings.Repeat(indentStep, depth)
}

// WriteMarkup renders a component's visual tree as indented markup, one
// element per line, depth-first in the given order. An empty list renders
// as the empty string.
func WriteMarkup(nodes component.NodeList) (string, error) {
	var sb strings.Builder
	if err := writeNodes(&sb, nodes, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeNodes(sb *strings.Builder, nodes component.NodeList, depth int) error {
	indent := Indent(depth)

	for _, node := range nodes {
		switch n := node.(type) {
		case component.ComponentRef:
			// Nested component placeholder
			sb.WriteString(indent)
			sb.WriteString("<" + string(n) + "/>\n")

		case *component.Element:
			if n == nil {
				continue
			}
			d, err := Lookup(n.Kind)
			if err != nil {
				return err
			}

			sb.WriteString(indent)
			if len(n.Children) == 0 {
				sb.WriteString(d.Open + d.Close + "\n")
				continue
			}
			sb.WriteString(d.Open + "\n")
			if err := writeNodes(sb, n.Children, depth+1); err != nil {
				return err
			}
			sb.WriteString(indent + d.Close + "\n")

		default:
			return errors.AssertionFailedf("unexpected visual node type %T", node)
		}
	}
	return nil
}

// WriteTemplate wraps rendered markup in the root container and the
// template section.
func WriteTemplate(markup string) string {
	return "<template>\n\t<div>\n" + markup + "\t</div>\n</template>"
}

// checkRefs verifies that every bare tag in the tree names one of the
// node's child components.
func checkRefs(node *component.Node, nodes component.NodeList) error {
	for _, v := range nodes {
		switch n := v.(type) {
		case component.ComponentRef:
			if !node.HasChild(string(n)) {
				return errors.WithHintf(
					errors.NewLookupError("<%s/> in %s does not name a child component", string(n), node.Name),
					"add %q to the children of %s or disable export.strict_refs", string(n), node.Name)
			}
		case *component.Element:
			if n == nil {
				continue
			}
			if err := checkRefs(node, n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}
