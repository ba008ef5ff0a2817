package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxBytes 日志文件轮转阈值 (10 MiB)。
	DefaultMaxBytes = 10 << 20
	// DefaultBackupCount 保留的轮转文件数量。
	DefaultBackupCount = 5

	megabyte = 1 << 20
)

// Config Logger 构造参数。
type Config struct {
	Name        string    // 日志器名称，出现在每一行中
	Level       string    // DEBUG / INFO / WARNING / ERROR / CRITICAL，空值为 INFO
	File        string    // 非空时同时写入可轮转的日志文件
	MaxBytes    int64     // 单个日志文件的最大字节数，向上取整到 MiB
	BackupCount int       // 保留的轮转文件数量
	Format      string    // text/template 模板，见 [DefaultFormat]
	Console     io.Writer // 控制台输出，默认为 os.Stdout
}

// Logger 分级日志器，同时输出到控制台与 (可选的) 轮转文件。
//
// Logger 通过构造函数显式创建并传递，不依赖进程级的按名称注册表。
type Logger struct {
	name  string
	level Level
	zl    *zap.Logger
	file  *lumberjack.Logger
}

// New 按 cfg 创建 Logger。级别无法识别时返回 [ErrInvalidLevel]。
func New(cfg Config) (*Logger, error) {
	levelName := cfg.Level
	if levelName == "" {
		levelName = InfoLevel.String()
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	enc, err := newTemplateEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	// 隐藏 *os.File 的 Sync，终端上 fsync 会返回 EINVAL
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(struct{ io.Writer }{console}), level.zapLevel()),
	}

	var file *lumberjack.Logger
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		file = newRotatingFile(cfg.File, cfg.MaxBytes, cfg.BackupCount)
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(file), level.zapLevel()))
	}

	return &Logger{
		name:  cfg.Name,
		level: level,
		zl:    zap.New(zapcore.NewTee(cores...)).Named(cfg.Name),
		file:  file,
	}, nil
}

// newRotatingFile lumberjack 以 MiB 为单位，maxBytes 向上取整。
func newRotatingFile(path string, maxBytes int64, backups int) *lumberjack.Logger {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if backups <= 0 {
		backups = DefaultBackupCount
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    int((maxBytes + megabyte - 1) / megabyte),
		MaxBackups: backups,
	}
}

// Name 返回日志器名称。
func (l *Logger) Name() string { return l.name }

// Level 返回最低输出级别。
func (l *Logger) Level() Level { return l.level }

// Enabled 报告 level 是否会被输出。
func (l *Logger) Enabled(level Level) bool { return level >= l.level }

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zl.Debug(msg, fields...) }

func (l *Logger) Info(msg string, fields ...zap.Field) { l.zl.Info(msg, fields...) }

func (l *Logger) Warning(msg string, fields ...zap.Field) { l.zl.Warn(msg, fields...) }

func (l *Logger) Error(msg string, fields ...zap.Field) { l.zl.Error(msg, fields...) }

func (l *Logger) Critical(msg string, fields ...zap.Field) { l.zl.DPanic(msg, fields...) }

// Sync 刷新缓冲。
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// Close 刷新并关闭日志文件。
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}
