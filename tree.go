package unitdoc

// Node is a generic tree built from one XML document. Attributes and child
// elements share the same key space. Attribute values are strings; a child
// element is a Node when its tag occurs once under the parent and a []any of
// Nodes when it repeats. Element text, when present, is stored under TextKey.
//
// Code reading a Node must never assume arity from the document shape: use
// Sequence or Children wherever an element can repeat.
type Node map[string]any

// TextKey holds the character data of an element.
const TextKey = "#text"

// Attr returns the string value stored under key, or "" when the key is
// absent or holds an element.
func (n Node) Attr(key string) string {
	s, _ := n[key].(string)
	return s
}

// Child returns the element stored under key. When the element repeats, the
// first occurrence is returned. A missing element yields nil, which is safe
// to call methods on.
func (n Node) Child(key string) Node {
	seq := Sequence(n[key])
	if len(seq) == 0 {
		return nil
	}
	return seq[0]
}

// Children returns every element stored under key, in document order.
func (n Node) Children(key string) []Node {
	return Sequence(n[key])
}

// Sequence coerces a tree value to a slice of Nodes. A single Node becomes a
// one-element slice, a sequence is filtered to its Node elements, and any
// other value (nil, attribute strings) yields nil.
func Sequence(v any) []Node {
	switch v := v.(type) {
	case Node:
		return []Node{v}
	case map[string]any:
		return []Node{Node(v)}
	case []Node:
		return v
	case []any:
		nodes := make([]Node, 0, len(v))
		for _, item := range v {
			switch item := item.(type) {
			case Node:
				nodes = append(nodes, item)
			case map[string]any:
				nodes = append(nodes, Node(item))
			}
		}
		return nodes
	default:
		return nil
	}
}

// Add stores value under key, turning the entry into a sequence when the
// key is already present.
func (n Node) Add(key string, value any) {
	existing, ok := n[key]
	if !ok {
		n[key] = value
		return
	}
	if seq, ok := existing.([]any); ok {
		n[key] = append(seq, value)
		return
	}
	n[key] = []any{existing, value}
}
