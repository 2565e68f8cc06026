// Package dump renders decoded TPM structures for people to read.
//
// Values are first converted to a YAML node tree. Constants are shown by
// name, attributes by their set bits, unions under the name of their
// selector and sized buffers by their decoded contents. The tree is then
// either encoded as YAML or printed as an indented text tree.
package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/google/go-tpm-wire/tpm2"
)

var (
	boxedType     = reflect.TypeOf((*tpm2.Boxed)(nil)).Elem()
	unionType     = reflect.TypeOf((*tpm2.Union)(nil)).Elem()
	enumType      = reflect.TypeOf((*tpm2.Enum)(nil)).Elem()
	attributeType = reflect.TypeOf((*tpm2.Attribute)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Node converts v to a YAML node tree.
func Node(v interface{}) (*yaml.Node, error) {
	return node(reflect.ValueOf(v))
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v interface{}) error {
	n, err := Node(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// Text writes v as an indented tree of "name: value" lines.
func Text(w io.Writer, v interface{}) error {
	n, err := Node(v)
	if err != nil {
		return err
	}
	var sb strings.Builder
	writeText(&sb, n, 0)
	_, err = io.WriteString(w, sb.String())
	return err
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func typedScalar(tag, s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
}

func mapping(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: pairs}
}

func node(v reflect.Value) (*yaml.Node, error) {
	if !v.IsValid() {
		return typedScalar("!!null", "null"), nil
	}
	if v.Kind() == reflect.Interface {
		return node(v.Elem())
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return typedScalar("!!null", "null"), nil
		}
		return node(v.Elem())
	}

	t := v.Type()
	switch {
	case t.Implements(boxedType):
		return boxedNode(v.Interface().(tpm2.Boxed))
	case t.Implements(unionType):
		return unionNode(v.Interface().(tpm2.Union))
	case t.Implements(enumType):
		return scalar(v.Interface().(tpm2.Enum).Constants().Format(v.Uint())), nil
	case t.Implements(attributeType):
		return scalar(v.Interface().(tpm2.Attribute).Bitfield().Format(v.Uint())), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return typedScalar("!!bool", "true"), nil
		}
		return typedScalar("!!bool", "false"), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t.Implements(stringerType) {
			return scalar(v.Interface().(fmt.Stringer).String()), nil
		}
		return typedScalar("!!int", fmt.Sprint(v.Uint())), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return scalar(hex.EncodeToString(v.Bytes())), nil
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < v.Len(); i++ {
			n, err := node(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return scalar(hex.EncodeToString(b)), nil
		}
	case reflect.Struct:
		return structNode(v)
	}
	return nil, fmt.Errorf("dump: cannot render %v", t)
}

func structNode(v reflect.Value) (*yaml.Node, error) {
	t := v.Type()
	m := mapping()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || hasTag(f, "skip") {
			continue
		}
		n, err := node(v.Field(i))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		m.Content = append(m.Content, scalar(f.Name), n)
	}
	return m, nil
}

func hasTag(f reflect.StructField, want string) bool {
	for _, part := range strings.Split(f.Tag.Get("gotpm"), ",") {
		if part == want {
			return true
		}
	}
	return false
}

// boxedNode renders the contents of a sized buffer, falling back to hex when
// the bytes do not decode.
func boxedNode(b tpm2.Boxed) (*yaml.Node, error) {
	if b.IsEmpty() {
		n := typedScalar("!!null", "null")
		n.LineComment = "# empty"
		return n, nil
	}
	contents, err := b.Value()
	if err == nil {
		return node(reflect.ValueOf(contents))
	}
	raw, rawErr := b.Bytes()
	if rawErr != nil {
		return nil, rawErr
	}
	n := scalar(hex.EncodeToString(raw))
	n.LineComment = "# " + err.Error()
	return n, nil
}

// unionNode renders a union as a one-entry mapping from the selector name to
// the member, or as the bare selector name for empty members.
func unionNode(u tpm2.Union) (*yaml.Node, error) {
	sel, ok := u.Selector()
	if !ok {
		n := typedScalar("!!null", "null")
		n.LineComment = "# unset"
		return n, nil
	}
	name := u.Family().Discriminator().Format(sel)
	member := u.Member()
	if member == nil {
		return scalar(name), nil
	}
	n, err := node(reflect.ValueOf(member))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return mapping(scalar(name), n), nil
}

func writeText(sb *strings.Builder, n *yaml.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if v.Kind == yaml.ScalarNode {
				fmt.Fprintf(sb, "%s%s: %s\n", indent, k.Value, textScalar(v))
				continue
			}
			if len(v.Content) == 0 {
				fmt.Fprintf(sb, "%s%s: (none)\n", indent, k.Value)
				continue
			}
			fmt.Fprintf(sb, "%s%s:\n", indent, k.Value)
			writeText(sb, v, depth+1)
		}
	case yaml.SequenceNode:
		for i, v := range n.Content {
			if v.Kind == yaml.ScalarNode {
				fmt.Fprintf(sb, "%s[%d] %s\n", indent, i, textScalar(v))
				continue
			}
			fmt.Fprintf(sb, "%s[%d]\n", indent, i)
			writeText(sb, v, depth+1)
		}
	default:
		fmt.Fprintf(sb, "%s%s\n", indent, textScalar(n))
	}
}

func textScalar(n *yaml.Node) string {
	s := n.Value
	if n.Tag == "!!null" {
		s = "-"
	}
	if n.LineComment != "" {
		s += " (" + strings.TrimPrefix(n.LineComment, "# ") + ")"
	}
	return s
}
