package ipld

import (
	"fmt"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// MapEntry is one key/value pair assembled, in order, into a map node.
// Order matters for the DAG-JSON payload encoding (see ucan/formatter);
// DAG-CBOR re-sorts map keys canonically regardless of assembly order.
type MapEntry struct {
	Key   string
	Value Node
}

// NewMap builds a Node of kind Map from an ordered list of entries.
func NewMap(entries []MapEntry) (Node, error) {
	np := basicnode.Prototype.Any
	nb := np.NewBuilder()
	ma, err := nb.BeginMap(int64(len(entries)))
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := ma.AssembleKey().AssignString(e.Key); err != nil {
			return nil, err
		}
		if err := ma.AssembleValue().AssignNode(e.Value); err != nil {
			return nil, err
		}
	}
	if err := ma.Finish(); err != nil {
		return nil, err
	}
	return nb.Build(), nil
}

// NewList builds a Node of kind List from a slice of nodes.
func NewList(items []Node) (Node, error) {
	np := basicnode.Prototype.Any
	nb := np.NewBuilder()
	la, err := nb.BeginList(int64(len(items)))
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := la.AssembleValue().AssignNode(item); err != nil {
			return nil, err
		}
	}
	if err := la.Finish(); err != nil {
		return nil, err
	}
	return nb.Build(), nil
}

// NewString, NewInt, NewBytes, NewNull are single-value node constructors,
// used to keep call sites in the datamodel builders terse.
func NewString(s string) Node {
	return basicnode.NewString(s)
}

func NewInt(i int64) Node {
	return basicnode.NewInt(i)
}

func NewBytes(b []byte) Node {
	return basicnode.NewBytes(b)
}

func NewLink(l Link) Node {
	return basicnode.NewLink(l)
}

func NewNull() Node {
	return datamodel.Null
}

// IsNull reports whether n is the Null value.
func IsNull(n Node) bool {
	return n.Kind() == datamodel.Kind_Null
}

// AsStringMap collapses a Map-kind node into a Go map, for callers (like
// Fact) that only need unordered key/value access.
func AsStringMap(n Node) (map[string]any, error) {
	if n.Kind() != datamodel.Kind_Map {
		return nil, fmt.Errorf("expected map, got %s", n.Kind())
	}
	out := map[string]any{}
	it := n.MapIterator()
	for !it.Done() {
		k, v, err := it.Next()
		if err != nil {
			return nil, err
		}
		ks, err := k.AsString()
		if err != nil {
			return nil, err
		}
		val, err := ToPlain(v)
		if err != nil {
			return nil, err
		}
		out[ks] = val
	}
	return out, nil
}

// ToPlain converts an arbitrary IPLD node into plain Go values (string,
// int64, float64, bool, []byte, []any, map[string]any, nil).
func ToPlain(n Node) (any, error) {
	switch n.Kind() {
	case datamodel.Kind_Null:
		return nil, nil
	case datamodel.Kind_Bool:
		return n.AsBool()
	case datamodel.Kind_Int:
		return n.AsInt()
	case datamodel.Kind_Float:
		return n.AsFloat()
	case datamodel.Kind_String:
		return n.AsString()
	case datamodel.Kind_Bytes:
		return n.AsBytes()
	case datamodel.Kind_Link:
		return n.AsLink()
	case datamodel.Kind_List:
		var out []any
		it := n.ListIterator()
		for !it.Done() {
			_, v, err := it.Next()
			if err != nil {
				return nil, err
			}
			pv, err := ToPlain(v)
			if err != nil {
				return nil, err
			}
			out = append(out, pv)
		}
		return out, nil
	case datamodel.Kind_Map:
		return AsStringMap(n)
	default:
		return nil, fmt.Errorf("unsupported node kind: %s", n.Kind())
	}
}

// FromPlain converts a plain Go value produced by encoding/json (or built by
// hand) into an IPLD node. Used for facts and capability caveats, which are
// opaque JSON objects as far as this library is concerned.
func FromPlain(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return basicnode.NewBool(val), nil
	case string:
		return NewString(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case float64:
		if val == float64(int64(val)) {
			return NewInt(int64(val)), nil
		}
		return basicnode.NewFloat(val), nil
	case []byte:
		return NewBytes(val), nil
	case []any:
		items := make([]Node, len(val))
		for i, item := range val {
			n, err := FromPlain(item)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return NewList(items)
	case map[string]any:
		entries := make([]MapEntry, 0, len(val))
		for k, item := range val {
			n, err := FromPlain(item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Value: n})
		}
		return NewMap(entries)
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}
