package model

// Package model defines the gallery state shared by the controller and the UI:
// image slots, their display status, and the set of loaded slot tags. Types
// here carry no synchronization; callers mutate them on the UI goroutine.
