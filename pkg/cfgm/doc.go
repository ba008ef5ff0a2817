// Package cfgm 提供分层的键值配置容器。
//
// 配置树来自 YAML/JSON 文件，使用点分路径访问嵌套层级，例如 "database.host"。
//
// # 读取优先级 (从高到低)
//
//  1. 环境变量 - 每次 [Store.Get] 时实时查询，不做缓存
//  2. 已存储的值 - 通过 [Store.Load] 或 [Store.Set] 写入
//  3. 默认值 - 调用方传入
//
// 环境变量值总是以字符串返回，即使文件中的同名值是数字或布尔。
//
// # 环境变量命名
//
// 前缀 + 大写的 key，点号 (.) 转为下划线 (_)。默认前缀为 "APP_"，
// 可通过 [WithEnvPrefix] 修改：
//   - database.host → APP_DATABASE_HOST
//   - logging.max_bytes → APP_LOGGING_MAX_BYTES
//
// # 快速开始
//
//	store, err := cfgm.Open("config.yaml")
//	if err != nil {
//	    return err
//	}
//	host := store.Get("database.host", cfgm.String("localhost"))
//	if s, ok := host.AsString(); ok {
//	    fmt.Println(s)
//	}
//
// # 类型化配置
//
// [Store.Decode] 将子树解码到结构体 (以 json tag 为准)，并对每个叶子 key
// 应用环境变量覆盖：
//
//	cfg := DefaultConfig()
//	if err := store.Decode("", &cfg); err != nil {
//	    return err
//	}
//
// # 文件格式
//
// 扩展名决定解析器：.json 使用严格 JSON，.yaml/.yml 使用 YAML，其余返回
// [ErrUnsupportedFormat]。两种格式解析出的数值统一规范化 (整数为 int64，
// 其余为 float64)，相同内容得到相同的值。
package cfgm
