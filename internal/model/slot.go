package model

import (
	"fmt"
	"strings"
)

// SlotStatus represents what a slot is currently displaying
type SlotStatus string

const (
	// SlotStatusEmpty means the slot shows the placeholder image
	SlotStatusEmpty SlotStatus = "Empty"

	// SlotStatusLoading means a fetch for the slot is in flight
	SlotStatusLoading SlotStatus = "Loading"

	// SlotStatusLoaded means the slot shows a fetched image
	SlotStatusLoaded SlotStatus = "Loaded"
)

// String returns the string representation of SlotStatus
func (s SlotStatus) String() string {
	return string(s)
}

// IsLoaded returns true if the slot shows a fetched image
func (s SlotStatus) IsLoaded() bool {
	return s == SlotStatusLoaded
}

// Image service defaults
const (
	DefaultBaseURL     = "https://picsum.photos"
	DefaultImageWidth  = 120
	DefaultImageHeight = 80
)

// DefaultTags lists the picsum image ids shown on screen, in display order.
var DefaultTags = []int{237, 230, 222, 257, 240}

// Slot is one image display unit identified by its picsum tag.
type Slot struct {
	Tag    int
	Status SlotStatus
	// Generation is bumped on every load dispatch and every clear. A fetch
	// completion is applied only while its generation is still current.
	Generation uint64
}

// NewSlot creates an empty slot for the given tag
func NewSlot(tag int) *Slot {
	return &Slot{
		Tag:    tag,
		Status: SlotStatusEmpty,
	}
}

// NextGeneration bumps and returns the slot generation
func (s *Slot) NextGeneration() uint64 {
	s.Generation++
	return s.Generation
}

// IsCurrent reports whether gen is still the slot's latest generation
func (s *Slot) IsCurrent(gen uint64) bool {
	return s.Generation == gen
}

// ImageURL builds the picsum URL for a tag: {base}/id/{tag}/{width}/{height}
func ImageURL(baseURL string, tag, width, height int) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/id/%d/%d/%d", base, tag, width, height)
}
