//go:build mobile

package utils

// MobileEmulateEnv 移动端构建下不生效
const MobileEmulateEnv = "BATTLEGRID_MOBILE_EMULATE"

// IsMobile 移动端构建恒为 true
func IsMobile() bool {
	return true
}
