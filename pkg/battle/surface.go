package battle

//go:generate mockgen -destination=mock/mock_surface.go -package=battlemock github.com/gonewx/battlegrid/pkg/battle Surface

import "github.com/gonewx/battlegrid/pkg/ecs"

// Geometry 几何查询能力
// 碰撞算法只依赖这两个查询，因此可以脱离真实渲染表面进行测试
type Geometry interface {
	// ClientRect 返回元素相对视口的矩形（不含滚动偏移）
	ClientRect(element ecs.EntityID) BoundingBox
	// ScrollOffset 返回当前文档滚动偏移
	ScrollOffset() (x, y float64)
}

// Surface 布阵引擎需要的渲染表面
// 元素创建、类名切换、绝对定位偏移与几何查询
type Surface interface {
	Geometry

	// CreateElement 在 parent 下创建带标识符和类名的元素
	CreateElement(id string, parent ecs.EntityID, classes ...string) ecs.EntityID
	// ElementID 返回元素标识符
	ElementID(element ecs.EntityID) string
	// Parent 返回父元素（0 表示文档根）
	Parent(element ecs.EntityID) ecs.EntityID
	// SetOffset 设置绝对定位偏移（相对父元素左上角）
	SetOffset(element ecs.EntityID, left, top float64)
	// SetLabel 设置元素文字
	SetLabel(element ecs.EntityID, text string)

	AddClass(element ecs.EntityID, class string)
	RemoveClass(element ecs.EntityID, class string)
	HasClass(element ecs.EntityID, class string) bool
}
