package model

// LoadedSet is the set of slot tags currently showing a fetched image.
// Membership is restricted to a fixed universe of tags.
type LoadedSet struct {
	universe []int
	allowed  map[int]struct{}
	members  map[int]struct{}
}

// NewLoadedSet creates an empty set over the given universe of tags.
// Duplicate tags in universe are ignored.
func NewLoadedSet(universe []int) *LoadedSet {
	ls := &LoadedSet{
		universe: make([]int, 0, len(universe)),
		allowed:  make(map[int]struct{}, len(universe)),
		members:  make(map[int]struct{}, len(universe)),
	}
	for _, tag := range universe {
		if _, dup := ls.allowed[tag]; dup {
			continue
		}
		ls.allowed[tag] = struct{}{}
		ls.universe = append(ls.universe, tag)
	}
	return ls
}

// Allows reports whether tag belongs to the universe
func (ls *LoadedSet) Allows(tag int) bool {
	_, ok := ls.allowed[tag]
	return ok
}

// Add inserts tag. Tags outside the universe are ignored and false is returned.
func (ls *LoadedSet) Add(tag int) bool {
	if !ls.Allows(tag) {
		return false
	}
	ls.members[tag] = struct{}{}
	return true
}

// Remove deletes tag from the set
func (ls *LoadedSet) Remove(tag int) {
	delete(ls.members, tag)
}

// Contains reports whether tag is loaded
func (ls *LoadedSet) Contains(tag int) bool {
	_, ok := ls.members[tag]
	return ok
}

// Len returns the number of loaded tags
func (ls *LoadedSet) Len() int {
	return len(ls.members)
}

// Capacity returns the size of the universe
func (ls *LoadedSet) Capacity() int {
	return len(ls.universe)
}

// IsFull reports whether every tag of the universe is loaded
func (ls *LoadedSet) IsFull() bool {
	return len(ls.members) == len(ls.universe)
}

// Fill marks every tag of the universe as loaded
func (ls *LoadedSet) Fill() {
	for _, tag := range ls.universe {
		ls.members[tag] = struct{}{}
	}
}

// Clear empties the set
func (ls *LoadedSet) Clear() {
	ls.members = make(map[int]struct{}, len(ls.universe))
}

// Tags returns loaded tags in universe order
func (ls *LoadedSet) Tags() []int {
	tags := make([]int, 0, len(ls.members))
	for _, tag := range ls.universe {
		if ls.Contains(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Missing returns tags of the universe that are not loaded, in universe order
func (ls *LoadedSet) Missing() []int {
	tags := make([]int, 0, len(ls.universe)-len(ls.members))
	for _, tag := range ls.universe {
		if !ls.Contains(tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Universe returns a copy of the allowed tags in order
func (ls *LoadedSet) Universe() []int {
	out := make([]int, len(ls.universe))
	copy(out, ls.universe)
	return out
}

// Snapshot returns an independent copy of the set
func (ls *LoadedSet) Snapshot() *LoadedSet {
	cp := NewLoadedSet(ls.universe)
	for tag := range ls.members {
		cp.members[tag] = struct{}{}
	}
	return cp
}
