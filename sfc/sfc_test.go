package sfc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sfcgen/component"
	"github.com/teranos/sfcgen/errors"
)

func el(kind string, children ...component.VisualNode) *component.Element {
	return &component.Element{Kind: kind, Children: component.NodeList(children)}
}

func TestCatalogIsComplete(t *testing.T) {
	seen := map[ElementKind]bool{}
	for _, k := range Kinds {
		d, ok := k.Delimiters()
		require.True(t, ok, "kind %q listed in Kinds but has no delimiters", k)
		assert.NotEmpty(t, d.Open)
		assert.False(t, seen[k], "kind %q listed twice", k)
		seen[k] = true
	}
	assert.Len(t, Kinds, 11)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		kind string
		want Delimiters
	}{
		{"div", Delimiters{"<div>", "</div>"}},
		{"img", Delimiters{"<img>", ""}},
		{"link", Delimiters{`<a href="#"/>`, ""}},
		{"list", Delimiters{"<li>", "</li>"}},
		{"list-ol", Delimiters{"<ol>", "</ol>"}},
		{"input", Delimiters{"<input />", ""}},
		{"navbar", Delimiters{"<nav>", "</nav>"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := Lookup(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Lookup("marquee")
	require.Error(t, err)
	assert.True(t, errors.IsLookupError(err))
	assert.Contains(t, errors.FlattenHints(err), "navbar")
}

func TestWriteMarkupEmpty(t *testing.T) {
	out, err := WriteMarkup(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = WriteMarkup(component.NodeList{})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestWriteMarkupNesting(t *testing.T) {
	nodes := component.NodeList{
		component.ComponentRef("Header"),
		el("div",
			el("paragraph"),
			el("list-ul",
				el("list", component.ComponentRef("Item")),
			),
		),
		el("img"),
	}

	want := "" +
		"    <Header/>\n" +
		"    <div>\n" +
		"      <p></p>\n" +
		"      <ul>\n" +
		"        <li>\n" +
		"          <Item/>\n" +
		"        </li>\n" +
		"      </ul>\n" +
		"    </div>\n" +
		"    <img>\n"

	got, err := WriteMarkup(nodes)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WriteMarkup() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteMarkupIndentTracksDepth(t *testing.T) {
	// Build a chain of nested divs and check every line's indentation
	const depth = 12
	var node component.VisualNode = el("button")
	for i := 0; i < depth; i++ {
		node = el("div", node)
	}

	out, err := WriteMarkup(component.NodeList{node})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2*depth+1)
	for i := 0; i <= depth; i++ {
		assert.True(t, strings.HasPrefix(lines[i], Indent(i)+"<"), "line %d: %q", i, lines[i])
		assert.True(t, strings.HasPrefix(lines[len(lines)-1-i], Indent(i)+"<"), "closing line %d", i)
	}
	for d := 1; d < depth; d++ {
		assert.Greater(t, len(Indent(d)), len(Indent(d-1)))
	}
}

func TestWriteMarkupUnknownKind(t *testing.T) {
	_, err := WriteMarkup(component.NodeList{el("div", el("blink"))})
	require.Error(t, err)
	assert.True(t, errors.IsLookupError(err))
	assert.Contains(t, err.Error(), "blink")
}

func TestWriteAnnotation(t *testing.T) {
	assert.Equal(t, "", WriteAnnotation(nil))
	assert.Equal(t, "", WriteAnnotation([]string{}))
	assert.Equal(t, "<!--\nfirst\nsecond line\n-->\n\n", WriteAnnotation([]string{"first", "second line"}))
}

func TestWriteStyleIsFixed(t *testing.T) {
	assert.Equal(t, "\n\n<style scoped>\n</style>", WriteStyle())
	assert.Equal(t, WriteStyle(), WriteStyle())
}

func TestPlanScriptPresence(t *testing.T) {
	tests := []struct {
		name        string
		node        component.Node
		wantHelpers []string
	}{
		{name: "no bindings", node: component.Node{Name: "A"}, wantHelpers: nil},
		{name: "state only", node: component.Node{Name: "A", State: []string{"s"}}, wantHelpers: []string{HelperMapState}},
		{name: "actions only", node: component.Node{Name: "A", Actions: []string{"a"}}, wantHelpers: []string{HelperMapActions}},
		{name: "both", node: component.Node{Name: "A", State: []string{"s"}, Actions: []string{"a"}}, wantHelpers: []string{HelperMapState, HelperMapActions}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanScript(&tt.node, DefaultOptions())
			assert.Equal(t, tt.wantHelpers, plan.StoreHelpers)

			out := plan.Render()
			assert.Equal(t, len(tt.node.State) > 0, strings.Contains(out, "  computed: {"))
			assert.Equal(t, len(tt.node.Actions) > 0, strings.Contains(out, "  methods: {"))
			assert.NotContains(t, out, "data ()")
			assert.Contains(t, out, "  components: {\n  },\n")
		})
	}
}

func TestPlanScriptChildImports(t *testing.T) {
	opts := Options{ComponentDir: "@/components/", Extension: "vue"}
	plan := PlanScript(&component.Node{Name: "App", Children: []string{"Nav", "Card"}}, opts)

	assert.Equal(t, []ChildImport{
		{Name: "Nav", Path: "@/components/Nav.vue"},
		{Name: "Card", Path: "@/components/Card.vue"},
	}, plan.ChildImports)

	out := plan.Render()
	assert.Contains(t, out, "import Nav from '@/components/Nav.vue';\nimport Card from '@/components/Card.vue';\n")
	assert.Contains(t, out, "  components: {\n    Nav,\n    Card,\n  },\n")
}

func TestRenderBlockOrder(t *testing.T) {
	node := &component.Node{
		Name:    "Counter",
		Props:   []string{"label"},
		State:   []string{"count"},
		Actions: []string{"increment"},
	}
	out := PlanScript(node, DefaultOptions()).Render()

	data := strings.Index(out, "  data () {")
	computed := strings.Index(out, "  computed: {")
	methods := strings.Index(out, "  methods: {")
	require.True(t, data > 0 && computed > 0 && methods > 0)
	assert.Less(t, data, computed)
	assert.Less(t, computed, methods)
	assert.Contains(t, out, "\n      label: \"PLACEHOLDER FOR VALUE\",\n    }\n  },\n")
}

func TestTypescriptTogglesOnlyWrapper(t *testing.T) {
	node := &component.Node{
		Name:     "Foo",
		HTMLList: component.NodeList{el("form", el("input"))},
		Children: []string{"Bar"},
		Props:    []string{"p"},
		State:    []string{"s"},
		Actions:  []string{"a"},
		NoteList: []string{"note"},
	}

	plain, err := NewGenerator(DefaultOptions()).GenerateNode(node)
	require.NoError(t, err)

	typedOpts := DefaultOptions()
	typedOpts.Typescript = true
	typed, err := NewGenerator(typedOpts).GenerateNode(node)
	require.NoError(t, err)

	// Undo exactly the three typed-variant differences
	undone := strings.Replace(typed, "<script lang='ts'>", "<script>", 1)
	undone = strings.Replace(undone, "import { defineComponent } from \"vue\";\n", "", 1)
	undone = strings.Replace(undone, "export default defineComponent ({", "export default {", 1)
	undone = strings.Replace(undone, "});\n</script>", "};\n</script>", 1)

	if diff := cmp.Diff(plain, undone); diff != "" {
		t.Errorf("typed variant changed more than the wrapper (-plain +typed):\n%s", diff)
	}
}

func TestGenerateButtonScenario(t *testing.T) {
	reg := component.Registry{
		"Foo": {Name: "Foo", HTMLList: component.NodeList{el("button")}},
	}

	want := "<template>\n" +
		"\t<div>\n" +
		"    <button></button>\n" +
		"\t</div>\n" +
		"</template>\n" +
		"\n" +
		"<script>\n" +
		"\n" +
		"export default {\n" +
		"  name: 'Foo',\n" +
		"  components: {\n" +
		"  },\n" +
		"};\n" +
		"</script>\n" +
		"\n" +
		"<style scoped>\n" +
		"</style>\n"

	got, err := NewGenerator(DefaultOptions()).Generate(reg, "Foo")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateStoreBindingScenario(t *testing.T) {
	reg := component.Registry{
		"Foo": {
			Name:     "Foo",
			HTMLList: component.NodeList{el("button")},
			State:    []string{"count"},
			Actions:  []string{"increment"},
		},
	}

	got, err := NewGenerator(DefaultOptions()).Generate(reg, "Foo")
	require.NoError(t, err)

	assert.Contains(t, got, "<script>\nimport { mapState, mapActions } from \"vuex\"\n\nexport default {\n")
	assert.Contains(t, got, "  computed: {\n    ...mapState([\n      \"count\",\n    ]),\n  },\n")
	assert.Contains(t, got, "  methods: {\n    ...mapActions([\n      \"increment\",\n    ]),\n  },\n};\n</script>")
}

func TestGenerateTypedWithEverything(t *testing.T) {
	reg := component.Registry{
		"Page": {
			Name:     "Page",
			HTMLList: component.NodeList{component.ComponentRef("Nav"), el("navbar", el("link"))},
			Children: []string{"Nav"},
			Props:    []string{"title"},
			State:    []string{"user"},
			NoteList: []string{"Landing page"},
		},
	}
	opts := DefaultOptions()
	opts.Typescript = true

	want := "<!--\n" +
		"Landing page\n" +
		"-->\n" +
		"\n" +
		"<template>\n" +
		"\t<div>\n" +
		"    <Nav/>\n" +
		"    <nav>\n" +
		"      <a href=\"#\"/>\n" +
		"    </nav>\n" +
		"\t</div>\n" +
		"</template>\n" +
		"\n" +
		"<script lang='ts'>\n" +
		"import { mapState } from \"vuex\"\n" +
		"import { defineComponent } from \"vue\";\n" +
		"import Nav from '@/components/Nav.vue';\n" +
		"\n" +
		"export default defineComponent ({\n" +
		"  name: 'Page',\n" +
		"  components: {\n" +
		"    Nav,\n" +
		"  },\n" +
		"  data () {\n" +
		"    return {\n" +
		"      title: \"PLACEHOLDER FOR VALUE\",\n" +
		"    }\n" +
		"  },\n" +
		"  computed: {\n" +
		"    ...mapState([\n" +
		"      \"user\",\n" +
		"    ]),\n" +
		"  },\n" +
		"});\n" +
		"</script>\n" +
		"\n" +
		"<style scoped>\n" +
		"</style>\n"

	got, err := NewGenerator(opts).Generate(reg, "Page")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	reg := component.Registry{
		"Foo": {
			Name:     "Foo",
			HTMLList: component.NodeList{el("div", el("paragraph"), component.ComponentRef("Bar"))},
			Children: []string{"Bar", "Bar"},
			State:    []string{"a", "b"},
		},
	}
	gen := NewGenerator(DefaultOptions())

	first, err := gen.Generate(reg, "Foo")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := gen.Generate(reg, "Foo")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// Duplicates are kept as given
	assert.Equal(t, 2, strings.Count(first, "import Bar from"))
}

func TestGenerateMissingComponent(t *testing.T) {
	_, err := NewGenerator(DefaultOptions()).Generate(component.Registry{}, "Ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsLookupError(err))
}

func TestStrictRefs(t *testing.T) {
	node := &component.Node{
		Name:     "Foo",
		HTMLList: component.NodeList{el("div", component.ComponentRef("Stranger"))},
		Children: []string{"Friend"},
	}

	_, err := NewGenerator(DefaultOptions()).GenerateNode(node)
	assert.NoError(t, err, "bare tags are permissive by default")

	strict := DefaultOptions()
	strict.StrictRefs = true
	_, err = NewGenerator(strict).GenerateNode(node)
	require.Error(t, err)
	assert.True(t, errors.IsLookupError(err))
	assert.Contains(t, err.Error(), "Stranger")

	node.Children = append(node.Children, "Stranger")
	_, err = NewGenerator(strict).GenerateNode(node)
	assert.NoError(t, err)
}

func TestNewGeneratorDefaults(t *testing.T) {
	gen := NewGenerator(Options{})
	assert.Equal(t, "vue", gen.FileExtension())
	assert.Equal(t, "@/components", gen.opts.ComponentDir)
	assert.True(t, TypescriptEnabled("on"))
	assert.False(t, TypescriptEnabled("On"))
	assert.False(t, TypescriptEnabled("true"))
}

func TestRenderKeepsNamesVerbatim(t *testing.T) {
	node := &component.Node{
		Name:    "Foo",
		Props:   []string{"we\"ird"},
		State:   []string{"user\"name", "tab\tkey"},
		Actions: []string{`back\slash`},
	}

	got := PlanScript(node, DefaultOptions()).Render()
	assert.Contains(t, got, "\n      we\"ird: \"PLACEHOLDER FOR VALUE\",")
	assert.Contains(t, got, "\n      \"user\"name\",")
	assert.Contains(t, got, "\n      \"tab\tkey\",")
	assert.Contains(t, got, "\n      \"back\\slash\",")
	assert.NotContains(t, got, `\"`)
	assert.NotContains(t, got, `\t`)
}

func TestGenerateNamesComponentByRegistryKey(t *testing.T) {
	node := &component.Node{Name: "Bar", HTMLList: component.NodeList{el("div")}}
	reg := component.Registry{"Foo": node}

	got, err := NewGenerator(DefaultOptions()).Generate(reg, "Foo")
	require.NoError(t, err)
	assert.Contains(t, got, "  name: 'Foo'")
	assert.NotContains(t, got, "'Bar'")
	assert.Equal(t, "Bar", node.Name, "registry entry is left untouched")
}
