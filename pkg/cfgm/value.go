package cfgm

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Kind 标识 [Value] 承载的数据类别。
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value 是配置值的标签联合体 (null/bool/number/string/sequence/mapping)。
//
// 零值为 null。调用方通过 AsXxx 系列方法自行收窄类型。
type Value struct {
	raw any
}

// Null 为空值。
var Null = Value{}

// Bool 构造布尔值。
func Bool(b bool) Value { return Value{raw: b} }

// Int 构造整数值。
func Int(i int64) Value { return Value{raw: i} }

// Float 构造浮点值。
func Float(f float64) Value { return Value{raw: f} }

// String 构造字符串值。
func String(s string) Value { return Value{raw: s} }

// ValueOf 将任意 Go 值规范化为 [Value]。
//
// 整数统一为 int64，浮点统一为 float64，切片与 map 递归转换；
// 无法识别的类型以 fmt 的 %v 形式存为字符串。
func ValueOf(v any) Value {
	return Value{raw: normalize(v)}
}

// Kind 返回值的类别。
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case nil:
		return NullKind
	case bool:
		return BoolKind
	case int64, float64:
		return NumberKind
	case string:
		return StringKind
	case []any:
		return SequenceKind
	case map[string]any:
		return MappingKind
	default:
		return NullKind
	}
}

// IsNull 报告是否为空值。
func (v Value) IsNull() bool { return v.raw == nil }

// AsBool 收窄为布尔值。
func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}

// AsString 收窄为字符串。
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsInt 收窄为整数，整值浮点数同样可以收窄。
func (v Value) AsInt() (int64, bool) {
	switch n := v.raw.(type) {
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64 {
			return int64(n), true
		}
	}

	return 0, false
}

// AsFloat 收窄为浮点数。
func (v Value) AsFloat() (float64, bool) {
	switch n := v.raw.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}

// AsSlice 收窄为序列。
func (v Value) AsSlice() ([]Value, bool) {
	seq, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Value, len(seq))
	for i, elem := range seq {
		out[i] = Value{raw: deepCopy(elem)}
	}

	return out, true
}

// AsMap 收窄为映射。
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]Value, len(m))
	for key, elem := range m {
		out[key] = Value{raw: deepCopy(elem)}
	}

	return out, true
}

// Any 返回底层原始值的深拷贝。
func (v Value) Any() any {
	return deepCopy(v.raw)
}

func (v Value) String() string {
	if v.raw == nil {
		return "null"
	}

	return fmt.Sprintf("%v", v.raw)
}

func normalize(v any) any {
	switch typed := v.(type) {
	case nil:
		return nil
	case Value:
		return deepCopy(typed.raw)
	case bool, string, int64, float64:
		return typed
	case int:
		return int64(typed)
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}
		f, err := typed.Float64()
		if err != nil {
			return typed.String()
		}

		return f
	case float32:
		return float64(typed)
	case time.Duration:
		return typed.String()
	case time.Time:
		return typed.Format(time.RFC3339Nano)
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalize(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalize(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = normalize(typed[i])
		}

		return out
	}

	return normalizeReflect(reflect.ValueOf(v))
}

func normalizeReflect(val reflect.Value) any {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return float64(u)
		}

		return int64(u)
	case reflect.Float32, reflect.Float64:
		return val.Float()
	case reflect.Bool:
		return val.Bool()
	case reflect.String:
		return val.String()
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}

		return normalize(val.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = normalize(val.Index(i).Interface())
		}

		return out
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = normalize(iter.Value().Interface())
		}

		return out
	case reflect.Struct:
		return structValueToMap(val, val.Type())
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}

func deepCopy(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = deepCopy(value)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = deepCopy(typed[i])
		}

		return out
	default:
		return v
	}
}
