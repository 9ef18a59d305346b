package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// FromAny converts a dynamically typed Go value into a node.  Ordered
// maps (yaml.MapSlice) keep their field order; plain maps are sorted by
// key so the result is deterministic.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x <= uint64(1<<63-1) {
			return FromInt(int64(x)), nil
		}
		return &Node{Type: NumberType, Number: strconv.FormatUint(x, 10)}, nil
	case float64:
		return FromFloat(x), nil
	case time.Time:
		return FromString(x.Format(time.RFC3339)), nil
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprintf("%v", item.Key), val)
		}
		return res, nil
	case map[string]any:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		res := Array()
		for _, elt := range x {
			val, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

// ToAny converts a node to a dynamically typed Go value.  Objects become
// yaml.MapSlice so field order survives re-encoding.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		if f, err := strconv.ParseFloat(y.Number, 64); err == nil {
			return f
		}
		return y.Number
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{
				Key:   y.Fields[i].String,
				Value: ToAny(y.Values[i]),
			}
		}
		return res
	default:
		panic("impossible production")
	}
}
