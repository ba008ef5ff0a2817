package cfgm

import (
	"maps"
	"slices"

	"github.com/urfave/cli/v3"
)

// BindFlags 将用户显式设置的 CLI flags 写入配置，bindings 为 flag 名 → 配置 key。
//
// 未设置的 flag 被忽略，flag 默认值不会覆盖配置文件中的值。写入经由 [Store.Set]，
// 因此环境变量覆盖仍然优先。flag 可以定义在 cmd 或其任一上级命令中。
//
// 示例：
//
//	store.BindFlags(cmd, map[string]string{
//	    "log-level": "logging.level",
//	    "option":    "run.option",
//	})
func (s *Store) BindFlags(cmd *cli.Command, bindings map[string]string) {
	for _, flag := range slices.Sorted(maps.Keys(bindings)) {
		if !cmd.IsSet(flag) {
			continue
		}
		s.Set(bindings[flag], cmd.Value(flag))
	}
}
