package battle

// Character 角色名单中的一个条目
type Character struct {
	ID   int
	Name string
}
