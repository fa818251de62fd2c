package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBoxComponent struct {
	X, Y float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if !em.Exists(id2) {
		t.Error("Created entity should exist")
	}
	if em.Exists(0) {
		t.Error("ID 0 is reserved and must not exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testBoxComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBoxComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testBoxComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoxComponent{X: 3})

	box, ok := GetComponent[*testBoxComponent](em, id)
	if !ok || box.X != 3 {
		t.Fatalf("GetComponent[*testBoxComponent] = (%v, %v)", box, ok)
	}

	// 修改指针组件应直接生效
	box.X = 7
	again, _ := GetComponent[*testBoxComponent](em, id)
	if again.X != 7 {
		t.Errorf("Expected pointer component to be shared, got X=%f", again.X)
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if !HasComponent[*testBoxComponent](em, id) {
		t.Error("HasComponent should report existing component")
	}
}

func TestGetEntitiesWithKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBoxComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testTagComponent{})
		}
		ids = append(ids, id)
	}

	boxes := GetEntitiesWith1[*testBoxComponent](em)
	if len(boxes) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(boxes))
	}
	for i, id := range boxes {
		if id != ids[i] {
			t.Fatalf("Entity %d out of order: got %d, want %d", i, id, ids[i])
		}
	}

	tagged := GetEntitiesWith2[*testBoxComponent, *testTagComponent](em)
	if len(tagged) != 10 {
		t.Fatalf("Expected 10 tagged entities, got %d", len(tagged))
	}
	for i, id := range tagged {
		if id != ids[i*2] {
			t.Errorf("Tagged entity %d: got %d, want %d", i, id, ids[i*2])
		}
	}
}

func TestEntitiesReturnsCopy(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	list := em.Entities()
	list[0] = 99

	if em.Entities()[0] != 1 {
		t.Error("Entities() should return a copy")
	}
}
