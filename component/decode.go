package component

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/teranos/sfcgen/errors"
)

// UnmarshalJSON accepts a mixed array of bare tags and {text, children} objects.
func (l *NodeList) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "htmlList must be an array")
	}
	nodes, err := nodesFromAny(raw)
	if err != nil {
		return err
	}
	*l = nodes
	return nil
}

// MarshalJSON writes bare tags as strings and elements as objects.
func (l NodeList) MarshalJSON() ([]byte, error) {
	out := make([]interface{}, 0, len(l))
	for _, n := range l {
		out = append(out, n)
	}
	return json.Marshal(out)
}

// UnmarshalYAML accepts a mixed sequence of bare tags and {text, children} mappings.
func (l *NodeList) UnmarshalYAML(value *yaml.Node) error {
	var raw []interface{}
	if err := value.Decode(&raw); err != nil {
		return errors.Wrapf(err, "htmlList must be a sequence (line %d)", value.Line)
	}
	nodes, err := nodesFromAny(raw)
	if err != nil {
		return err
	}
	*l = nodes
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler for BurntSushi/toml.
func (l *NodeList) UnmarshalTOML(data interface{}) error {
	raw, err := asList(data)
	if err != nil {
		return err
	}
	nodes, err := nodesFromAny(raw)
	if err != nil {
		return err
	}
	*l = nodes
	return nil
}

// nodesFromAny converts generically decoded JSON, YAML or TOML values into
// visual nodes. Strings become ComponentRefs, tables become Elements.
func nodesFromAny(raw []interface{}) (NodeList, error) {
	nodes := make(NodeList, 0, len(raw))
	for i, v := range raw {
		switch v := v.(type) {
		case string:
			nodes = append(nodes, ComponentRef(v))
		case map[string]interface{}:
			el, err := elementFromMap(v)
			if err != nil {
				return nil, errors.Wrapf(err, "node %d", i)
			}
			nodes = append(nodes, el)
		default:
			return nil, errors.NewInvalidRequestError("node %d: expected a tag string or an object, got %T", i, v)
		}
	}
	return nodes, nil
}

func elementFromMap(m map[string]interface{}) (*Element, error) {
	kind, ok := m["text"].(string)
	if !ok || kind == "" {
		return nil, errors.NewInvalidRequestError("element is missing its \"text\" kind")
	}

	el := &Element{Kind: kind, Children: NodeList{}}
	if m["children"] == nil {
		return el, nil
	}

	raw, err := asList(m["children"])
	if err != nil {
		return nil, errors.Wrapf(err, "children of %q", kind)
	}
	children, err := nodesFromAny(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "children of %q", kind)
	}
	el.Children = children
	return el, nil
}

// asList normalizes the list shapes decoders produce. BurntSushi/toml hands
// arrays of tables over as []map[string]interface{}.
func asList(data interface{}) ([]interface{}, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return v, nil
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, nil
	default:
		return nil, errors.NewInvalidRequestError("expected an array, got %T", data)
	}
}
