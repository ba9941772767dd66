package quadtree

import (
	"fmt"
	"math"
	"reflect"
)

// FromValues is New for loosely typed input such as decoded JSON or config
// maps. boundary must be a Rectangle or a *Rectangle and capacity any Go
// number. A fractional capacity is rounded up, since a node accepts points
// while it holds fewer than capacity.
func FromValues(boundary, capacity any) (*QuadTree, error) {
	var rect Rectangle
	switch b := boundary.(type) {
	case nil:
		return nil, errBoundaryMissing()
	case *Rectangle:
		if b == nil {
			return nil, errBoundaryMissing()
		}
		rect = *b
	case Rectangle:
		rect = b
	default:
		return nil, errBoundaryType(boundary)
	}

	c, ok := toFloat(capacity)
	if !ok {
		return nil, errCapacityType(capacity)
	}
	if math.IsNaN(c) || c < 1 {
		return nil, errCapacityRange(capacity)
	}
	if c > math.MaxInt32 {
		c = math.MaxInt32
	}
	return newNode(rect, int(math.Ceil(c))), nil
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// typeName names the dynamic type of v the way it is reported in
// construction errors.
func typeName(v any) string {
	if v == nil {
		return "null"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return "object"
	case reflect.Func:
		return "function"
	default:
		return fmt.Sprintf("%T", v)
	}
}
