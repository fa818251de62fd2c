package battle

import "github.com/gonewx/battlegrid/pkg/ecs"

// BoundingBox 元素矩形快照
// 由 BoundsOf 产生时为文档绝对坐标（已加上滚动偏移）；
// 由 Geometry.ClientRect 产生时为视口坐标。值类型，不缓存
type BoundingBox struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// BoundsOf 计算元素的文档绝对矩形
// 每次定位决策都必须重新调用：布局可能在两次读取之间变化（滚动、窗口缩放）
func BoundsOf(g Geometry, element ecs.EntityID) BoundingBox {
	rect := g.ClientRect(element)
	scrollX, scrollY := g.ScrollOffset()

	return BoundingBox{
		Top:    rect.Top + scrollY,
		Left:   rect.Left + scrollX,
		Right:  rect.Right + scrollX,
		Bottom: rect.Bottom + scrollY,
	}
}

// Width 矩形宽度
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height 矩形高度
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Contains 检查点是否在矩形内（含边界）
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// OverlapsWithMargin 带边距的重叠检测
// 目标矩形每条边向内收缩 margin 后再与 b 比较。
// margin 取卡片宽度的一半时，相当于要求卡片中心落在目标矩形内
func (b BoundingBox) OverlapsWithMargin(other BoundingBox, margin float64) bool {
	return b.Right >= other.Left+margin &&
		b.Left <= other.Right-margin &&
		b.Bottom >= other.Top+margin &&
		b.Top <= other.Bottom-margin
}
