package config

// 布局配置常量
// 本文件定义了布阵界面的布局参数，包括网格系统、窗口尺寸和各类元素的类名

// Formation Grid Configuration (布阵网格配置)
const (
	// GridWidth 是布阵网格的列数（每行格子数），固定为 6
	// 网格注册表按此宽度换行编号：row = 1 + index/6, column = 1 + index%6
	GridWidth = 6

	// DefaultGridRows 是默认行数（8 行 x 6 列 = 48 格）
	DefaultGridRows = 8

	// DefaultMaxCellSize 是格子的最大边长（像素）
	DefaultMaxCellSize = 96.0

	// DefaultMinCellSize 是格子的最小边长（像素），窗口再窄也不会更小
	DefaultMinCellSize = 40.0

	// DefaultCellGap 是相邻格子的间距（像素）
	DefaultCellGap = 4.0

	// DefaultPageMargin 是网格距窗口左右边缘的距离（像素）
	DefaultPageMargin = 24.0

	// DefaultHeaderHeight 是网格上方标题栏高度（像素）
	DefaultHeaderHeight = 48.0
)

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 640
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Battle Setup"
)

// 元素类名
// 与页面样式约定保持一致
const (
	ClassCard          = "game__card"
	ClassCardDragging  = "game__card--dragging"
	ClassCardTypeBase  = "game__card-" // 后接卡片类型，如 "game__card-player"
	ClassGridCell      = "game__grid__cell"
	ClassGridCellHover = "game__grid__cell--hover"
	ClassGrid          = "game__grid"
	ClassContainer     = "game__grid__characters-container"
	CardElementPrefix  = "game__card-" // 卡片元素ID前缀，后接角色ID
	DefaultCardType    = "player"
)

// DefaultInitialCells 默认的初始站位（网格注册表索引，对应 8 行网格的最后一行）
var DefaultInitialCells = []int{42, 43, 44, 45, 46, 47}
