// Package surface 提供基于 ECS 的无头渲染表面
//
// Document 把页面元素保存为实体：类名、布局盒、绝对定位偏移和文字都是组件。
// 它实现 battle.Surface，布阵引擎通过它读写几何和外观；
// 渲染系统按文档顺序把元素画到屏幕上。
package surface

import (
	"log"

	"github.com/gonewx/battlegrid/pkg/battle"
	"github.com/gonewx/battlegrid/pkg/components"
	"github.com/gonewx/battlegrid/pkg/ecs"
)

// Document 页面文档
type Document struct {
	entityManager *ecs.EntityManager
	byID          map[string]ecs.EntityID

	// 视口尺寸（逻辑像素）
	viewportWidth  float64
	viewportHeight float64

	// 内容尺寸（由布局设置），决定可滚动范围
	contentWidth  float64
	contentHeight float64

	// 滚动偏移
	scrollX float64
	scrollY float64
}

// NewDocument 创建指定视口尺寸的空文档
func NewDocument(viewportWidth, viewportHeight float64) *Document {
	return &Document{
		entityManager:  ecs.NewEntityManager(),
		byID:           make(map[string]ecs.EntityID),
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// EntityManager 返回底层实体管理器（渲染系统使用）
func (d *Document) EntityManager() *ecs.EntityManager {
	return d.entityManager
}

// CreateElement 创建元素
// id 为空时元素不可通过 ElementByID 查找；重复 id 时后创建的元素覆盖查找结果
func (d *Document) CreateElement(id string, parent ecs.EntityID, classes ...string) ecs.EntityID {
	entity := d.entityManager.CreateEntity()

	d.entityManager.AddComponent(entity, &components.ElementComponent{ID: id, Parent: parent})
	classList := &components.ClassListComponent{}
	for _, class := range classes {
		classList.Add(class)
	}
	d.entityManager.AddComponent(entity, classList)
	d.entityManager.AddComponent(entity, &components.BoxComponent{})

	if id != "" {
		if _, exists := d.byID[id]; exists {
			log.Printf("[Document] 警告: 元素ID重复 %q", id)
		}
		d.byID[id] = entity
	}
	return entity
}

// ElementByID 按标识符查找元素
func (d *Document) ElementByID(id string) (ecs.EntityID, bool) {
	entity, ok := d.byID[id]
	return entity, ok
}

// ElementID 返回元素标识符，元素不存在时返回空字符串
func (d *Document) ElementID(element ecs.EntityID) string {
	el, ok := ecs.GetComponent[*components.ElementComponent](d.entityManager, element)
	if !ok {
		return ""
	}
	return el.ID
}

// Parent 返回父元素，0 表示文档根
func (d *Document) Parent(element ecs.EntityID) ecs.EntityID {
	el, ok := ecs.GetComponent[*components.ElementComponent](d.entityManager, element)
	if !ok {
		return 0
	}
	return el.Parent
}

// Elements 按文档顺序返回所有元素
func (d *Document) Elements() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ElementComponent](d.entityManager)
}

// ElementsWithClass 按文档顺序返回带指定类名的元素
func (d *Document) ElementsWithClass(class string) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, entity := range d.Elements() {
		if d.HasClass(entity, class) {
			result = append(result, entity)
		}
	}
	return result
}

// AddClass 添加类名
func (d *Document) AddClass(element ecs.EntityID, class string) {
	if classList, ok := ecs.GetComponent[*components.ClassListComponent](d.entityManager, element); ok {
		classList.Add(class)
	}
}

// RemoveClass 移除类名
func (d *Document) RemoveClass(element ecs.EntityID, class string) {
	if classList, ok := ecs.GetComponent[*components.ClassListComponent](d.entityManager, element); ok {
		classList.Remove(class)
	}
}

// HasClass 检查类名
func (d *Document) HasClass(element ecs.EntityID, class string) bool {
	classList, ok := ecs.GetComponent[*components.ClassListComponent](d.entityManager, element)
	return ok && classList.Has(class)
}

// SetLabel 设置元素文字
func (d *Document) SetLabel(element ecs.EntityID, text string) {
	if label, ok := ecs.GetComponent[*components.LabelComponent](d.entityManager, element); ok {
		label.Text = text
		return
	}
	d.entityManager.AddComponent(element, &components.LabelComponent{Text: text})
}

// Label 返回元素文字
func (d *Document) Label(element ecs.EntityID) string {
	label, ok := ecs.GetComponent[*components.LabelComponent](d.entityManager, element)
	if !ok {
		return ""
	}
	return label.Text
}

// SetBox 设置流式元素的文档位置和尺寸（布局使用）
func (d *Document) SetBox(element ecs.EntityID, x, y, width, height float64) {
	if box, ok := ecs.GetComponent[*components.BoxComponent](d.entityManager, element); ok {
		box.X, box.Y, box.Width, box.Height = x, y, width, height
	}
}

// SetSize 只设置元素尺寸
func (d *Document) SetSize(element ecs.EntityID, width, height float64) {
	if box, ok := ecs.GetComponent[*components.BoxComponent](d.entityManager, element); ok {
		box.Width, box.Height = width, height
	}
}

// SetOffset 设置绝对定位偏移，元素从此相对父元素定位
func (d *Document) SetOffset(element ecs.EntityID, left, top float64) {
	if !d.entityManager.Exists(element) {
		return
	}
	if offset, ok := ecs.GetComponent[*components.StyleOffsetComponent](d.entityManager, element); ok {
		offset.Left, offset.Top = left, top
		return
	}
	d.entityManager.AddComponent(element, &components.StyleOffsetComponent{Left: left, Top: top})
}

// Offset 返回绝对定位偏移，ok 为 false 表示元素不是绝对定位
func (d *Document) Offset(element ecs.EntityID) (left, top float64, ok bool) {
	offset, ok := ecs.GetComponent[*components.StyleOffsetComponent](d.entityManager, element)
	if !ok {
		return 0, 0, false
	}
	return offset.Left, offset.Top, true
}

// documentRect 计算元素的文档绝对矩形
// 绝对定位元素 = 父元素左上角 + 偏移；其余元素直接使用布局盒
func (d *Document) documentRect(element ecs.EntityID) battle.BoundingBox {
	box, ok := ecs.GetComponent[*components.BoxComponent](d.entityManager, element)
	if !ok {
		return battle.BoundingBox{}
	}

	x, y := box.X, box.Y
	if offset, ok := ecs.GetComponent[*components.StyleOffsetComponent](d.entityManager, element); ok {
		parentRect := d.documentRect(d.Parent(element))
		x = parentRect.Left + offset.Left
		y = parentRect.Top + offset.Top
	}

	return battle.BoundingBox{
		Top:    y,
		Left:   x,
		Right:  x + box.Width,
		Bottom: y + box.Height,
	}
}

// ClientRect 返回元素相对视口的矩形
func (d *Document) ClientRect(element ecs.EntityID) battle.BoundingBox {
	rect := d.documentRect(element)
	return battle.BoundingBox{
		Top:    rect.Top - d.scrollY,
		Left:   rect.Left - d.scrollX,
		Right:  rect.Right - d.scrollX,
		Bottom: rect.Bottom - d.scrollY,
	}
}

// ScrollOffset 返回当前滚动偏移
func (d *Document) ScrollOffset() (x, y float64) {
	return d.scrollX, d.scrollY
}

// ScrollBy 滚动文档，结果限制在可滚动范围内
func (d *Document) ScrollBy(dx, dy float64) {
	d.ScrollTo(d.scrollX+dx, d.scrollY+dy)
}

// ScrollTo 滚动到指定位置，结果限制在可滚动范围内
func (d *Document) ScrollTo(x, y float64) {
	maxX, maxY := d.maxScroll()
	d.scrollX = clamp(x, 0, maxX)
	d.scrollY = clamp(y, 0, maxY)
}

// maxScroll 返回最大滚动偏移
func (d *Document) maxScroll() (float64, float64) {
	maxX := d.contentWidth - d.viewportWidth
	maxY := d.contentHeight - d.viewportHeight
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return maxX, maxY
}

// SetViewport 设置视口尺寸并重新限制滚动偏移
func (d *Document) SetViewport(width, height float64) {
	d.viewportWidth, d.viewportHeight = width, height
	d.ScrollTo(d.scrollX, d.scrollY)
}

// Viewport 返回视口尺寸
func (d *Document) Viewport() (width, height float64) {
	return d.viewportWidth, d.viewportHeight
}

// SetContentSize 设置内容尺寸（布局使用）
func (d *Document) SetContentSize(width, height float64) {
	d.contentWidth, d.contentHeight = width, height
	d.ScrollTo(d.scrollX, d.scrollY)
}

// ContentSize 返回内容尺寸
func (d *Document) ContentSize() (width, height float64) {
	return d.contentWidth, d.contentHeight
}

// HitTest 返回视口坐标 (x, y) 处最上层元素的标识符
// 后创建的元素在上层；没有标识符的元素不参与命中
func (d *Document) HitTest(x, y float64) (string, bool) {
	elements := d.Elements()
	for i := len(elements) - 1; i >= 0; i-- {
		id := d.ElementID(elements[i])
		if id == "" {
			continue
		}
		if d.ClientRect(elements[i]).Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
