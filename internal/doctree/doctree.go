// Package doctree parses upstream feed documents into a generic element tree.
// Feeds deliver either XML markup or JSON depending on endpoint; both land in
// the same node shape so extractors stay format-agnostic.
package doctree

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyDocument is returned when there is nothing to parse.
var ErrEmptyDocument = errors.New("doctree: empty document")

// ErrNoRootElement is returned when markup contains no elements.
var ErrNoRootElement = errors.New("doctree: no root element")

// Node is one element of a parsed document. All accessors are nil-safe and
// return zero values for anything missing; absence never panics.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node

	text strings.Builder
}

// Parse sniffs the payload format by its first non-space byte: markup starts
// with '<', anything else is treated as JSON.
func Parse(data []byte) (*Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}
	if trimmed[0] == '<' {
		return parseXML(trimmed)
	}
	return parseJSON(trimmed)
}

func parseXML(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, attr := range t.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("doctree: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// parseJSON maps a JSON document onto the element tree. Object members become
// child elements; array items are named by the singular of the array key, so
// a "Races" array yields "Race" elements just like the markup feed. Scalar
// members double as attributes because markup upstreams split the same fields
// across attributes and child elements.
func parseJSON(data []byte) (*Node, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}

	root := &Node{Name: "document", Attrs: map[string]string{}}
	appendJSONValue(root, "document", value)
	return root, nil
}

func appendJSONValue(parent *Node, name string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for key, member := range v {
			switch child := member.(type) {
			case map[string]any:
				node := &Node{Name: key, Attrs: map[string]string{}}
				appendJSONValue(node, key, child)
				parent.Children = append(parent.Children, node)
			case []any:
				itemName := singularize(key)
				for _, item := range child {
					node := &Node{Name: itemName, Attrs: map[string]string{}}
					appendJSONValue(node, itemName, item)
					parent.Children = append(parent.Children, node)
				}
			default:
				text := scalarText(child)
				node := &Node{Name: key, Attrs: map[string]string{}}
				node.text.WriteString(text)
				parent.Children = append(parent.Children, node)
				parent.Attrs[key] = text
			}
		}
	case []any:
		itemName := singularize(name)
		for _, item := range v {
			node := &Node{Name: itemName, Attrs: map[string]string{}}
			appendJSONValue(node, itemName, item)
			parent.Children = append(parent.Children, node)
		}
	default:
		parent.text.WriteString(scalarText(v))
	}
}

func scalarText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

func singularize(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return strings.TrimSuffix(name, "s")
	}
	return name
}

// ElementsByTag returns all descendant elements with the given name, in
// document order.
func (n *Node) ElementsByTag(name string) []*Node {
	if n == nil {
		return nil
	}
	var found []*Node
	for _, child := range n.Children {
		if child.Name == name {
			found = append(found, child)
		}
		found = append(found, child.ElementsByTag(name)...)
	}
	return found
}

// FirstByTag returns the first descendant element with the given name, or nil.
func (n *Node) FirstByTag(name string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
		if match := child.FirstByTag(name); match != nil {
			return match
		}
	}
	return nil
}

// Child returns the first direct child with the given name, or nil. Unlike
// FirstByTag it never descends, so same-named nested elements don't shadow a
// sibling.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Attr returns the named attribute or "".
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// AttrOr returns the named attribute, or fallback when missing or empty.
func (n *Node) AttrOr(name, fallback string) string {
	if v := n.Attr(name); v != "" {
		return v
	}
	return fallback
}

// Text returns the element's own character data, trimmed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text.String())
}

// ChildText returns the text of the first descendant with the given name.
func (n *Node) ChildText(tag string) string {
	return n.FirstByTag(tag).Text()
}

// ChildTextOr returns the text of the first descendant with the given name,
// or fallback when the element is missing or empty.
func (n *Node) ChildTextOr(tag, fallback string) string {
	if v := n.ChildText(tag); v != "" {
		return v
	}
	return fallback
}
