package ecs

import "testing"

// stub components used only in tests
type counter struct{ val int }

func (counter) Type() ComponentType { return 1 }

type marker struct{}

func (marker) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestTypedGet(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, counter{val: 42})

	c, ok := Get[counter](w, id)
	if !ok {
		t.Fatal("expected component, got none")
	}
	if c.val != 42 {
		t.Fatalf("expected val=42, got %d", c.val)
	}
	if _, ok := Get[marker](w, id); ok {
		t.Fatal("Get returned a component that was never added")
	}
}

func TestUpdateWritesBack(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, counter{val: 1})

	if !Update(w, id, func(c *counter) { c.val += 9 }) {
		t.Fatal("Update reported missing component")
	}
	c, _ := Get[counter](w, id)
	if c.val != 10 {
		t.Fatalf("val = %d; want 10", c.val)
	}
}

func TestUpdateMissingSkipsCallback(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	called := false
	if Update(w, id, func(*counter) { called = true }) {
		t.Fatal("Update should report false for a missing component")
	}
	if called {
		t.Fatal("callback ran for a missing component")
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, counter{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestQueryFiltersAndOrders(t *testing.T) {
	w := NewWorld()
	var both []EntityID
	for i := 0; i < 20; i++ {
		id := w.CreateEntity()
		w.Add(id, counter{})
		if i%2 == 0 {
			w.Add(id, marker{})
			both = append(both, id)
		}
	}

	got := w.Query(ComponentType(1), ComponentType(2))
	if len(got) != len(both) {
		t.Fatalf("expected %d results, got %d", len(both), len(got))
	}
	for i := range got {
		if got[i] != both[i] {
			t.Fatalf("result %d = %v; want %v (ascending ID order)", i, got[i], both[i])
		}
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, counter{val: 5})
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("component should be gone after Remove")
	}
	// Removing a type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, counter{})

	dead := w.CreateEntity()
	w.Add(dead, counter{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}
