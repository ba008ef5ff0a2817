// Author: lwmacct (https://github.com/lwmacct)
package cfgm_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
)

// Example_set 演示点分路径的写入与读取。
func Example_set() {
	store := cfgm.New()
	store.Set("a.b.c", "value")

	fmt.Println(store.Get("a.b.c", cfgm.Null))
	fmt.Println(store.Get("a.b", cfgm.Null).Kind())
	fmt.Println(store.Get("a.x", cfgm.String("fallback")))

	// Output:
	// value
	// mapping
	// fallback
}

// Example_envOverride 演示环境变量覆盖。
//
// 环境变量在读取时实时生效，且总是以字符串返回。
func Example_envOverride() {
	store := cfgm.New()
	store.Set("database.port", 5432)

	_ = os.Setenv("APP_DATABASE_PORT", "6543")
	defer func() { _ = os.Unsetenv("APP_DATABASE_PORT") }()

	port := store.Get("database.port", cfgm.Null)
	fmt.Println(port, port.Kind())

	// Output:
	// 6543 string
}

// Example_open 演示从 JSON 文件载入配置。
func Example_open() {
	dir, err := os.MkdirTemp("", "cfgm-example")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)

		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"database": {"host": "localhost", "port": 5432}}`), 0o600); err != nil {
		fmt.Println("写入失败:", err)

		return
	}

	store, err := cfgm.Open(path)
	if err != nil {
		fmt.Println("加载失败:", err)

		return
	}

	port, _ := store.Get("database.port", cfgm.Null).AsInt()
	fmt.Println("Host:", store.Get("database.host", cfgm.Null))
	fmt.Println("Port:", port)

	// Output:
	// Host: localhost
	// Port: 5432
}
