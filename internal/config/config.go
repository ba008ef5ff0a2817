// Package config 定义应用的类型化配置。
//
// 配置解析优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 --config 指定
//  3. 环境变量 - APP_ 前缀，例如 APP_LOGGING_FILE
//  4. CLI flags - 仅 --log-level，显式指定时生效
package config

import "github.com/lwmacct/251218-go-app-boot/pkg/logging"

// Config 应用配置。
type Config struct {
	App     AppConfig     `json:"app" desc:"应用配置"`
	Logging LoggingConfig `json:"logging" desc:"日志配置"`
}

// AppConfig 应用基础信息。
type AppConfig struct {
	Name string `json:"name" desc:"日志器名称"`
}

// LoggingConfig 日志配置。
type LoggingConfig struct {
	Level       string `json:"level" desc:"日志级别 (DEBUG/INFO/WARNING/ERROR/CRITICAL)"`
	File        string `json:"file" desc:"日志文件路径，留空只输出到控制台"`
	MaxBytes    int64  `json:"max_bytes" desc:"单个日志文件的最大字节数"`
	BackupCount int    `json:"backup_count" desc:"保留的轮转文件数量"`
	Format      string `json:"format" desc:"日志行模板 (text/template)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		App: AppConfig{
			Name: "app",
		},
		Logging: LoggingConfig{
			Level:       logging.InfoLevel.String(),
			MaxBytes:    logging.DefaultMaxBytes,
			BackupCount: logging.DefaultBackupCount,
			Format:      logging.DefaultFormat,
		},
	}
}

// LoggerConfig 将日志配置转换为 [logging.Config]。
func (c Config) LoggerConfig() logging.Config {
	return logging.Config{
		Name:        c.App.Name,
		Level:       c.Logging.Level,
		File:        c.Logging.File,
		MaxBytes:    c.Logging.MaxBytes,
		BackupCount: c.Logging.BackupCount,
		Format:      c.Logging.Format,
	}
}
