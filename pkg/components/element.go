package components

import "github.com/gonewx/battlegrid/pkg/ecs"

// ElementComponent 标识实体为页面中的一个可视元素
// 对应渲染表面上的一个节点，拥有可赋值的标识符和父节点
type ElementComponent struct {
	// ID 元素标识符（如 "game__card-1"），在同一文档内唯一
	ID string
	// Parent 父元素实体ID，0 表示文档根
	Parent ecs.EntityID
}

// ClassListComponent 元素的类名集合
// 保持插入顺序，重复添加同一类名无效果
type ClassListComponent struct {
	Classes []string
}

// Has 检查是否包含指定类名
func (c *ClassListComponent) Has(class string) bool {
	for _, existing := range c.Classes {
		if existing == class {
			return true
		}
	}
	return false
}

// Add 添加类名（已存在时忽略）
func (c *ClassListComponent) Add(class string) {
	if c.Has(class) {
		return
	}
	c.Classes = append(c.Classes, class)
}

// Remove 移除类名（不存在时忽略）
func (c *ClassListComponent) Remove(class string) {
	for i, existing := range c.Classes {
		if existing == class {
			c.Classes = append(c.Classes[:i], c.Classes[i+1:]...)
			return
		}
	}
}

// BoxComponent 元素的布局盒
// 对于普通流式元素，X/Y 为文档绝对坐标；
// 对于带 StyleOffsetComponent 的绝对定位元素，X/Y 被忽略，只使用尺寸
type BoxComponent struct {
	X      float64 // 文档坐标X（像素）
	Y      float64 // 文档坐标Y（像素）
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// StyleOffsetComponent 绝对定位偏移（相对父元素左上角）
// 等价于样式变量 --left / --top
type StyleOffsetComponent struct {
	Left float64
	Top  float64
}

// LabelComponent 元素上显示的文字
type LabelComponent struct {
	Text string
}
