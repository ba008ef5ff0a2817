package initialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-app-boot/internal/command"
	"github.com/lwmacct/251218-go-app-boot/internal/config"
	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
)

// ErrConfigExists 配置文件已存在且未指定 --force。
var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

func action(_ context.Context, cmd *cli.Command) error {
	if command.PrintVersion(cmd) {
		return nil
	}

	path := cmd.String("config")
	if path == "" {
		path = DefaultPath
	}

	out := cmd.Root().Writer
	_, _ = fmt.Fprintln(out, "アプリケーションを初期化しています...")

	if err := WriteDefaultConfig(path, cmd.Bool("force")); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "設定ファイルを作成しました: %s\n", path)
	_, _ = fmt.Fprintln(out, "初期化が完了しました。")

	return nil
}

// WriteDefaultConfig 将 [config.DefaultConfig] 按扩展名编码后写入 path。
func WriteDefaultConfig(path string, force bool) error {
	data, err := cfgm.Marshal(path, config.DefaultConfig())
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config files are meant to be readable
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
