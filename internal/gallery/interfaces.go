package gallery

import (
	"image"

	"github.com/ytget/photo-loader/internal/model"
)

// Display is the surface the controller draws on. Every method is called on
// the UI goroutine.
type Display interface {
	ShowImage(tag int, img image.Image)
	ShowPlaceholder(tag int)
	SetStatus(tag int, status model.SlotStatus)
}

// Dispatcher runs fn on the UI goroutine. In the app this is fyne.Do.
type Dispatcher func(fn func())

// Options configures a Controller
type Options struct {
	// Tags are the slot identifiers in display order.
	Tags []int
	// BaseURL, Width and Height build each slot's image URL.
	BaseURL string
	Width   int
	Height  int
	// ConfirmLoadAll makes load-all add a tag to the loaded set only after
	// its fetch succeeds. When false, load-all marks every slot loaded at
	// once, before any fetch completes.
	ConfirmLoadAll bool
}
