package gallery

// Package gallery owns the load/clear state machine for the image slots:
// per-slot toggling, the load-all/clear-all action, and the rule that every
// display or state mutation happens on the UI goroutine.
