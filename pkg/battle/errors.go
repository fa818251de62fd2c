package battle

import "errors"

var (
	// ErrCellIndexOutOfRange 初始站位索引超出网格注册表范围（启动配置错误）
	ErrCellIndexOutOfRange = errors.New("cell index out of range")

	// ErrInvalidBattleConfig 布阵编排器依赖缺失或不合法
	ErrInvalidBattleConfig = errors.New("invalid battle config")
)
