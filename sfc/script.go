package sfc

import (
	"fmt"
	"strings"

	"github.com/teranos/sfcgen/component"
)

// Store binding helpers spread into computed and methods.
const (
	HelperMapState   = "mapState"
	HelperMapActions = "mapActions"
)

// dataPlaceholder is the initial value written for every prop.
const dataPlaceholder = "PLACEHOLDER FOR VALUE"

// ChildImport is one child component import line.
type ChildImport struct {
	Name string
	Path string
}

// ScriptPlan decides which blocks of the logic section are present and what
// they contain. Render turns it into text; building the plan first keeps the
// presence rules testable on their own.
type ScriptPlan struct {
	Name  string
	Typed bool

	// StoreHelpers is empty, or holds mapState and/or mapActions in that order
	StoreHelpers []string
	ChildImports []ChildImport

	// Components is always rendered, possibly with an empty body
	Components []string

	// Each of these blocks is rendered only when non-empty
	Data     []string
	Computed []string
	Methods  []string
}

// PlanScript builds the logic section plan for node.
func PlanScript(node *component.Node, opts Options) ScriptPlan {
	plan := ScriptPlan{
		Name:       node.Name,
		Typed:      opts.Typescript,
		Components: append([]string(nil), node.Children...),
		Data:       append([]string(nil), node.Props...),
		Computed:   append([]string(nil), node.State...),
		Methods:    append([]string(nil), node.Actions...),
	}

	if len(node.State) > 0 {
		plan.StoreHelpers = append(plan.StoreHelpers, HelperMapState)
	}
	if len(node.Actions) > 0 {
		plan.StoreHelpers = append(plan.StoreHelpers, HelperMapActions)
	}

	for _, child := range node.Children {
		plan.ChildImports = append(plan.ChildImports, ChildImport{
			Name: child,
			Path: opts.ChildImportPath(child),
		})
	}
	return plan
}

// Render serializes the plan. Block order is fixed: imports, export header,
// components, data, computed, methods, closing.
func (p ScriptPlan) Render() string {
	var sb strings.Builder

	if p.Typed {
		sb.WriteString("\n\n<script lang='ts'>\n")
	} else {
		sb.WriteString("\n\n<script>\n")
	}

	if len(p.StoreHelpers) > 0 {
		sb.WriteString(fmt.Sprintf("import { %s } from \"vuex\"\n", strings.Join(p.StoreHelpers, ", ")))
	}
	if p.Typed {
		sb.WriteString("import { defineComponent } from \"vue\";\n")
	}
	for _, imp := range p.ChildImports {
		sb.WriteString(fmt.Sprintf("import %s from '%s';\n", imp.Name, imp.Path))
	}

	if p.Typed {
		sb.WriteString(fmt.Sprintf("\nexport default defineComponent ({\n  name: '%s'", p.Name))
	} else {
		sb.WriteString(fmt.Sprintf("\nexport default {\n  name: '%s'", p.Name))
	}

	sb.WriteString(",\n  components: {\n")
	for _, name := range p.Components {
		sb.WriteString(fmt.Sprintf("    %s,\n", name))
	}
	sb.WriteString("  },\n")

	if len(p.Data) > 0 {
		sb.WriteString("  data () {\n    return {")
		for _, prop := range p.Data {
			sb.WriteString("\n      " + prop + ": \"" + dataPlaceholder + "\",")
		}
		sb.WriteString("\n    }\n  },\n")
	}

	writeBinding(&sb, "computed", HelperMapState, p.Computed)
	writeBinding(&sb, "methods", HelperMapActions, p.Methods)

	if p.Typed {
		sb.WriteString("});\n</script>")
	} else {
		sb.WriteString("};\n</script>")
	}
	return sb.String()
}

// writeBinding renders a spread binding block such as
//
//	computed: {
//	  ...mapState([
//	    "count",
//	  ]),
//	},
func writeBinding(sb *strings.Builder, section, helper string, names []string) {
	if len(names) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("  %s: {\n    ...%s([", section, helper))
	for _, name := range names {
		// Names are emitted verbatim; they are not escaped or validated
		sb.WriteString("\n      \"" + name + "\",")
	}
	sb.WriteString("\n    ]),\n  },\n")
}
