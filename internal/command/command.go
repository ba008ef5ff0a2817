// Package command 提供各子命令共享的全局 flags 与启动流程。
package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-app-boot/internal/application"
	"github.com/lwmacct/251218-go-app-boot/internal/config"
	"github.com/lwmacct/251218-go-app-boot/internal/version"
	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
	"github.com/lwmacct/251218-go-app-boot/pkg/logging"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// GlobalBindings 全局 flag → 配置 key，仅显式指定的 flag 写入配置。
var GlobalBindings = map[string]string{
	"log-level": "logging.level",
}

// GlobalFlags 返回根命令的全局 flags，子命令中同样可用。
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "設定ファイルのパス (.json / .yaml / .yml)",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   Defaults.Logging.Level,
			Usage:   "ログレベル (DEBUG, INFO, WARNING, ERROR, CRITICAL)",
		},
		&cli.BoolFlag{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "バージョン情報を表示して終了",
		},
	}
}

// PrintVersion 在指定了 --version 时输出版本信息并返回 true。
func PrintVersion(cmd *cli.Command) bool {
	if !cmd.Bool("version") {
		return false
	}
	_, _ = fmt.Fprintln(cmd.Root().Writer, version.String())

	return true
}

// Bootstrap 按 flags 依次构造配置、日志器与应用。
//
// 配置优先级 (从低到高)：默认值 → 配置文件 → 显式指定的 flag → 环境变量。
// 调用方负责关闭返回的 Logger。
func Bootstrap(cmd *cli.Command, opts ...application.Option) (*application.Application, *logging.Logger, error) {
	store := cfgm.New(cfgm.WithTemplateExpansion())
	if path := cmd.String("config"); path != "" {
		if err := store.Load(path); err != nil {
			return nil, nil, err
		}
	}

	store.BindFlags(cmd, GlobalBindings)

	cfg := config.DefaultConfig()
	if err := store.Decode("", &cfg); err != nil {
		return nil, nil, err
	}

	loggerCfg := cfg.LoggerConfig()
	loggerCfg.Console = cmd.Root().Writer
	logger, err := logging.New(loggerCfg)
	if err != nil {
		return nil, nil, err
	}

	return application.New(store, logger, opts...), logger, nil
}

// Run 启动应用并执行一次，before 可在执行前调整配置。
func Run(ctx context.Context, cmd *cli.Command, before func(*application.Application)) error {
	app, logger, err := Bootstrap(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if before != nil {
		before(app)
	}

	return app.Run(ctx)
}
