package run

import (
	"context"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/lwmacct/251218-go-app-boot/internal/application"
	"github.com/lwmacct/251218-go-app-boot/internal/command"
	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
)

func action(ctx context.Context, cmd *cli.Command) error {
	if command.PrintVersion(cmd) {
		return nil
	}

	return Execute(ctx, cmd)
}

// Execute 以 run 语义启动应用，根命令未指定子命令时同样调用此函数。
//
// 显式指定的 --option 写入程序设置层，配置文件中的同名值被覆盖，环境变量仍然优先。
func Execute(ctx context.Context, cmd *cli.Command) error {
	return command.Run(ctx, cmd, func(app *application.Application) {
		app.Config().BindFlags(cmd, map[string]string{"option": OptionKey})
		option := app.Config().Get(OptionKey, cfgm.String(DefaultOption))
		app.Logger().Debug("run option resolved", zap.Stringer("option", option))
	})
}
