package sfc

import (
	"fmt"
	"strings"

	"github.com/teranos/sfcgen/errors"
)

// ElementKind names an entry of the element catalog.
type ElementKind string

// Element kinds the visual editor can place.
const (
	KindDiv           ElementKind = "div"
	KindButton        ElementKind = "button"
	KindForm          ElementKind = "form"
	KindImg           ElementKind = "img"
	KindLink          ElementKind = "link"
	KindList          ElementKind = "list"
	KindParagraph     ElementKind = "paragraph"
	KindOrderedList   ElementKind = "list-ol"
	KindUnorderedList ElementKind = "list-ul"
	KindInput         ElementKind = "input"
	KindNavbar        ElementKind = "navbar"
)

// Kinds lists every catalog entry in palette order.
var Kinds = []ElementKind{
	KindDiv,
	KindButton,
	KindForm,
	KindImg,
	KindLink,
	KindList,
	KindParagraph,
	KindOrderedList,
	KindUnorderedList,
	KindInput,
	KindNavbar,
}

// Delimiters is the opening/closing markup pair of an element kind.
// Close is empty for void elements.
type Delimiters struct {
	Open  string
	Close string
}

// IsVoid reports whether the element has no closing tag.
func (d Delimiters) IsVoid() bool {
	return d.Close == ""
}

// Delimiters returns the markup pair for k. Adding a kind means adding a
// constant, a Kinds entry and a case here; TestCatalogIsComplete checks all three agree.
func (k ElementKind) Delimiters() (Delimiters, bool) {
	switch k {
	case KindDiv:
		return Delimiters{"<div>", "</div>"}, true
	case KindButton:
		return Delimiters{"<button>", "</button>"}, true
	case KindForm:
		return Delimiters{"<form>", "</form>"}, true
	case KindImg:
		return Delimiters{"<img>", ""}, true
	case KindLink:
		return Delimiters{`<a href="#"/>`, ""}, true
	case KindList:
		return Delimiters{"<li>", "</li>"}, true
	case KindParagraph:
		return Delimiters{"<p>", "</p>"}, true
	case KindOrderedList:
		return Delimiters{"<ol>", "</ol>"}, true
	case KindUnorderedList:
		return Delimiters{"<ul>", "</ul>"}, true
	case KindInput:
		return Delimiters{"<input />", ""}, true
	case KindNavbar:
		return Delimiters{"<nav>", "</nav>"}, true
	default:
		return Delimiters{}, false
	}
}

// Lookup returns the delimiters for an element kind tag, or a lookup error
// if the tag is not in the catalog.
func Lookup(kind string) (Delimiters, error) {
	d, ok := ElementKind(kind).Delimiters()
	if !ok {
		return Delimiters{}, errors.WithHintf(
			errors.NewLookupError("element kind %q is not in the catalog", kind),
			"known element kinds: %s", kindList())
	}
	return d, nil
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// String renders a catalog entry as "kind  open…close" for CLI listings.
func (d Delimiters) String() string {
	if d.IsVoid() {
		return fmt.Sprintf("%s (void)", d.Open)
	}
	return d.Open + "…" + d.Close
}
