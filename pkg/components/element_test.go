package components

import (
	"reflect"
	"testing"
)

func TestClassListComponent(t *testing.T) {
	c := &ClassListComponent{}

	c.Add("game__card")
	c.Add("game__card-player")
	c.Add("game__card")

	if want := []string{"game__card", "game__card-player"}; !reflect.DeepEqual(c.Classes, want) {
		t.Fatalf("Classes = %v, want %v", c.Classes, want)
	}
	if !c.Has("game__card-player") {
		t.Error("Has(game__card-player) = false")
	}
	if c.Has("game__card--dragging") {
		t.Error("Has(game__card--dragging) = true")
	}

	c.Remove("game__card")
	c.Remove("missing")
	if want := []string{"game__card-player"}; !reflect.DeepEqual(c.Classes, want) {
		t.Fatalf("Classes after Remove = %v, want %v", c.Classes, want)
	}
}
