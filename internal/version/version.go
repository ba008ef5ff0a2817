// Package version 提供应用名称与版本信息。
package version

// AppRawName 应用名称。
const AppRawName = "appboot"

// Version 构建时通过 -ldflags "-X .../internal/version.Version=x.y.z" 注入。
var Version = "0.1.0"

// GetVersion 返回版本号。
func GetVersion() string {
	return Version
}

// String 返回 "appboot v0.1.0" 形式的版本信息。
func String() string {
	return AppRawName + " v" + GetVersion()
}
