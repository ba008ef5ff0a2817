// Package run 提供 run 子命令。
package run

import (
	"github.com/urfave/cli/v3"
)

// DefaultOption --option 的默认值。
const DefaultOption = "default_value"

// OptionKey --option 写入的配置 key，可被 APP_RUN_OPTION 覆盖。
const OptionKey = "run.option"

// NewCommand 创建 run 命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "アプリケーションを実行",
		Action: action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "option",
				Value: DefaultOption,
				Usage: "オプション引数",
			},
		},
	}
}
