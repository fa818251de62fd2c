//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（本地调试触摸布阵）
const MobileEmulateEnv = "BATTLEGRID_MOBILE_EMULATE"

// IsMobile 是否按移动端运行
// 桌面端默认 false
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
