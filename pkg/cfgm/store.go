package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/lwmacct/251218-go-app-boot/pkg/templexp"
)

// Store 分层配置容器。
//
// 读取优先级 (从高到低)：
//  1. 环境变量 - 前缀 + 大写 key，点号转为下划线，每次读取时实时查询
//  2. 已存储的值 - [Store.Load] 载入或 [Store.Set] 写入
//  3. 调用方提供的默认值
//
// Store 不是并发安全的。
type Store struct {
	tree map[string]any
	opts options
}

// New 创建空的 Store。
func New(opts ...Option) *Store {
	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		tree: make(map[string]any),
		opts: o,
	}
}

// Open 创建 Store 并从 path 载入配置。
func Open(path string, opts ...Option) (*Store, error) {
	s := New(opts...)
	if err := s.Load(path); err != nil {
		return nil, err
	}

	return s, nil
}

// Load 读取配置文件并整体替换当前配置树。
//
// 扩展名决定解析器：
//   - .json → JSON (严格解析)
//   - .yaml, .yml → YAML
//
// 任何失败都不会修改当前配置树。
func (s *Store) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return fmt.Errorf("stat config file %s: %w", path, err)
	}

	f, err := formatOf(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if s.opts.templateExpansion {
		expanded, expandErr := templexp.Expand(string(content))
		if expandErr != nil {
			return fmt.Errorf("expand template in %s: %w", path, expandErr)
		}
		content = []byte(expanded)
	}

	tree, err := parseConfigBytes(f, content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.tree = tree

	return nil
}

// EnvKey 返回 key 对应的环境变量名。
//
//	EnvKey("APP_", "database.host") == "APP_DATABASE_HOST"
func EnvKey(prefix, key string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// EnvKey 返回 key 在本 Store 前缀下的环境变量名。
func (s *Store) EnvKey(key string) string {
	return EnvKey(s.opts.envPrefix, key)
}

// Get 读取 key，不存在时返回 def。
//
// 环境变量覆盖总是以字符串返回，即使文件中的同名值是数字或布尔。
func (s *Store) Get(key string, def Value) Value {
	if v, ok := s.Lookup(key); ok {
		return v
	}

	return def
}

// Lookup 与 [Store.Get] 相同，但通过第二个返回值报告 key 是否存在。
func (s *Store) Lookup(key string) (Value, bool) {
	if env, ok := os.LookupEnv(s.EnvKey(key)); ok {
		return String(env), true
	}

	raw, ok := getByPath(s.tree, key)
	if !ok {
		return Null, false
	}

	return Value{raw: deepCopy(raw)}, true
}

// Set 写入 key，沿途创建缺失的映射；非映射的中间节点会被空映射覆盖。
func (s *Store) Set(key string, value any) {
	setByPath(s.tree, key, normalize(value))
}

// Decode 将 key 下的子树解码到结构体指针 out (以 json tag 为准)，key 为空表示整棵树。
//
// 结构体中的每个叶子 key 都先经过环境变量覆盖，因此类型化配置与 [Store.Get]
// 遵循相同的优先级。环境变量字符串会被弱类型转换为数字、布尔或 time.Duration。
// 树中缺失的字段保留 out 中已有的值，可先填入默认值再调用。
func (s *Store) Decode(key string, out any) error {
	typ := reflect.TypeOf(out)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode %q: out must be a pointer to struct, got %T", key, out)
	}

	data := map[string]any{}
	if key == "" {
		data = deepCopy(s.tree).(map[string]any)
	} else if raw, ok := getByPath(s.tree, key); ok {
		if sub, ok := raw.(map[string]any); ok {
			data = deepCopy(sub).(map[string]any)
		}
	}

	for _, leaf := range collectConfigKeys(typ) {
		full := leaf
		if key != "" {
			full = key + "." + leaf
		}
		if env, ok := os.LookupEnv(s.EnvKey(full)); ok {
			setByPath(data, leaf, env)
		}
	}

	if err := decodeConfigMap(data, out); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}

	return nil
}

// Marshal 将配置结构体 (json tag) 按 path 的扩展名编码为 JSON 或 YAML。
func Marshal(path string, v any) ([]byte, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	tree, ok := normalize(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidRoot, v)
	}

	return encodeConfig(f, tree)
}
