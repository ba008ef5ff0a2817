// Package root 组装根命令并将错误转换为退出码。
package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-app-boot/internal/command"
	"github.com/lwmacct/251218-go-app-boot/internal/command/initialize"
	"github.com/lwmacct/251218-go-app-boot/internal/command/run"
	"github.com/lwmacct/251218-go-app-boot/internal/version"
)

// ErrorPrefix 错误信息前缀。
const ErrorPrefix = "エラー: "

// NewCommand 创建根命令。未指定子命令时按 run 执行。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        version.AppRawName,
		Usage:       "アプリケーションブートストラップ",
		HideVersion: true, // --version 由 GlobalFlags 自行处理
		Flags:       command.GlobalFlags(),
		Action:      action,
		Commands:    []*cli.Command{run.NewCommand(), initialize.NewCommand()},
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if command.PrintVersion(cmd) {
		return nil
	}
	if cmd.Args().Present() {
		return fmt.Errorf("unknown command %q", strings.Join(cmd.Args().Slice(), " "))
	}

	return run.Execute(ctx, cmd)
}

// Execute 运行根命令，成功返回 0，任何错误输出到 stderr 并返回 1。
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand()
	cmd.Writer = stdout
	cmd.ErrWriter = stderr

	if err := cmd.Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s%v\n", ErrorPrefix, err)

		return 1
	}

	return 0
}
