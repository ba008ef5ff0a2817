package cfgm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// format 配置文件格式，由扩展名决定。
type format int

const (
	formatJSON format = iota + 1
	formatYAML
)

func formatOf(path string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func configTagName(field reflect.StructField) string {
	return parseTagName(field.Tag.Get("json"))
}

func parseTagName(tag string) string {
	if tag == "" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

func structValueToMap(val reflect.Value, typ reflect.Type) map[string]any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return map[string]any{}
		}
		val = val.Elem()
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return map[string]any{}
	}

	out := make(map[string]any)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}

		key := configTagName(field)
		if key == "" {
			continue
		}

		out[key] = normalize(val.Field(i).Interface())
	}

	return out
}

// parseConfigBytes 按格式解析文档并规范化为配置树。
//
// 空文档视为空树；顶层不是映射时返回 [ErrInvalidRoot]。
func parseConfigBytes(f format, content []byte) (map[string]any, error) {
	var raw any
	switch f {
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrParse)
		}
	case formatYAML:
		var doc yamlv3.Node
		if err := yamlv3.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if doc.Kind != 0 {
			keepTimestampText(&doc)
			if err := doc.Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
		}
	}

	tree, ok := normalize(raw).(map[string]any)
	switch {
	case raw == nil:
		return map[string]any{}, nil
	case !ok:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidRoot, raw)
	}

	return tree, nil
}

// keepTimestampText 将 !!timestamp 标量改为字符串，保留文件中的原文，
// 与 JSON 中的同一文本解析结果一致。
func keepTimestampText(node *yamlv3.Node) {
	if node.Kind == yamlv3.ScalarNode && node.ShortTag() == "!!timestamp" {
		node.Tag = "!!str"

		return
	}
	for _, child := range node.Content {
		keepTimestampText(child)
	}
}

func splitKey(key string) []string {
	return strings.Split(key, ".")
}

// getByPath 沿点分路径查找，任一段缺失或中间节点不是映射时返回 false。
func getByPath(tree map[string]any, path string) (any, bool) {
	var current any = tree
	for _, part := range splitKey(path) {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// setByPath 沿点分路径写入，缺失或非映射的中间节点被替换为空映射。
func setByPath(dst map[string]any, path string, value any) {
	parts := splitKey(path)
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// collectConfigKeys 递归收集结构体的叶子 key (以 json tag 为准)。
func collectConfigKeys(typ reflect.Type) []string {
	var keys []string
	collectConfigKeysRecursive(typ, "", &keys)

	return keys
}

func collectConfigKeysRecursive(typ reflect.Type, prefix string, keys *[]string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			collectConfigKeysRecursive(field.Type, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}

func encodeConfig(f format, tree map[string]any) ([]byte, error) {
	if f == formatJSON {
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
