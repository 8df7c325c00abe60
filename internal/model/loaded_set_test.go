package model

import (
	"reflect"
	"testing"
)

func TestLoadedSet_AddContainsRemove(t *testing.T) {
	ls := NewLoadedSet(DefaultTags)

	if ls.Len() != 0 {
		t.Fatalf("Expected empty set, got %d", ls.Len())
	}

	if !ls.Add(237) {
		t.Error("Expected Add(237) to succeed")
	}
	if !ls.Contains(237) {
		t.Error("Expected set to contain 237")
	}

	// Duplicate add keeps set semantics
	ls.Add(237)
	if ls.Len() != 1 {
		t.Errorf("Expected Len 1 after duplicate add, got %d", ls.Len())
	}

	ls.Remove(237)
	if ls.Contains(237) {
		t.Error("Expected 237 to be removed")
	}

	// Removing an absent tag is a no-op
	ls.Remove(237)
	if ls.Len() != 0 {
		t.Errorf("Expected Len 0, got %d", ls.Len())
	}
}

func TestLoadedSet_RejectsForeignTags(t *testing.T) {
	ls := NewLoadedSet(DefaultTags)

	tests := []int{0, 1, -237, 999}
	for _, tag := range tests {
		if ls.Add(tag) {
			t.Errorf("Add(%d) should be rejected", tag)
		}
		if ls.Contains(tag) {
			t.Errorf("Set should not contain foreign tag %d", tag)
		}
	}

	if ls.Len() != 0 {
		t.Errorf("Expected Len 0, got %d", ls.Len())
	}
}

func TestLoadedSet_FillAndClear(t *testing.T) {
	ls := NewLoadedSet(DefaultTags)
	ls.Add(230)

	ls.Fill()
	if !ls.IsFull() {
		t.Error("Expected set to be full after Fill")
	}
	if ls.Len() != 5 {
		t.Errorf("Expected Len 5, got %d", ls.Len())
	}

	ls.Clear()
	if ls.Len() != 0 {
		t.Errorf("Expected Len 0 after Clear, got %d", ls.Len())
	}
	if ls.IsFull() {
		t.Error("Expected set not to be full after Clear")
	}
}

func TestLoadedSet_TagsAndMissing(t *testing.T) {
	ls := NewLoadedSet(DefaultTags)
	ls.Add(240)
	ls.Add(237)
	ls.Add(222)

	if got, want := ls.Tags(), []int{237, 222, 240}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, expected %v", got, want)
	}
	if got, want := ls.Missing(), []int{230, 257}; !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, expected %v", got, want)
	}
}

func TestLoadedSet_DuplicateUniverse(t *testing.T) {
	ls := NewLoadedSet([]int{1, 2, 2, 3})

	if ls.Capacity() != 3 {
		t.Errorf("Expected capacity 3, got %d", ls.Capacity())
	}
	if got, want := ls.Universe(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Universe() = %v, expected %v", got, want)
	}
}

func TestLoadedSet_Snapshot(t *testing.T) {
	ls := NewLoadedSet(DefaultTags)
	ls.Add(257)

	snap := ls.Snapshot()
	ls.Add(230)

	if snap.Contains(230) {
		t.Error("Snapshot should not observe later mutations")
	}
	if !snap.Contains(257) {
		t.Error("Snapshot should contain tags present at capture time")
	}
}
