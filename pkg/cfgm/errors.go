package cfgm

import "errors"

var (
	// ErrFileNotFound 配置文件不存在。
	ErrFileNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat 扩展名不是 .json / .yaml / .yml。
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrParse 文档语法错误，包装解析器的原始错误。
	ErrParse = errors.New("parse config")
	// ErrInvalidRoot 文档顶层不是映射。
	ErrInvalidRoot = errors.New("config root must be a mapping")
)
