// Package initialize 提供 init 子命令：生成默认配置文件。
package initialize

import (
	"github.com/urfave/cli/v3"
)

// DefaultPath 未指定 --config 时写入的配置文件。
const DefaultPath = "config.yaml"

// NewCommand 创建 init 命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "アプリケーションを初期化 (デフォルト設定ファイルを生成)",
		Action: action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "既存の設定を上書き",
			},
		},
	}
}
