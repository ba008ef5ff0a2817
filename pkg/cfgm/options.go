package cfgm

// DefaultEnvPrefix 环境变量覆盖的默认前缀。
const DefaultEnvPrefix = "APP_"

// options Store 选项。
type options struct {
	envPrefix         string
	templateExpansion bool // 解析前对文件内容做 ${...} 展开（默认关闭）
}

// Option Store 选项函数。
type Option func(*options)

// WithEnvPrefix 设置环境变量覆盖的前缀，默认为 [DefaultEnvPrefix]。
//
// 示例 (前缀为 "MYAPP_")：
//   - database.host → MYAPP_DATABASE_HOST
//   - server.port → MYAPP_SERVER_PORT
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithTemplateExpansion 在解析前对配置文件执行 Shell 参数展开（见 templexp 包）。
//
// 例如 host: "${DB_HOST:-localhost}"。
func WithTemplateExpansion() Option {
	return func(o *options) {
		o.templateExpansion = true
	}
}
