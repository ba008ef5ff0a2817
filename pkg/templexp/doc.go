// Package templexp 提供配置文件内容的 Shell 参数展开。
//
// 仅处理 ${...} 语法 (不解析 $VAR)，在 YAML/JSON 解析之前做字符串替换。
// 不执行命令，也不修改进程环境变量。
//
// # 语义
//
//  1. 带冒号的形式 (:- := :+ :?) 把空值视为未设置
//  2. word 部分支持嵌套展开与 "$$" 字面量
//  3. 无法识别的表达式保持原样
//  4. ${VAR=word} 的赋值只在同一次 Expand 调用内生效
//
// # 快速开始
//
//	content := `host: "${DB_HOST:-localhost}"`
//	expanded, err := templexp.Expand(content)
//
// 测试中可使用 [ExpandWith] 注入变量来源。
package templexp
