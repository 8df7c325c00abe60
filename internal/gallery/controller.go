package gallery

import (
	"context"
	"image"

	"github.com/rs/zerolog"

	"github.com/ytget/photo-loader/internal/fetch"
	"github.com/ytget/photo-loader/internal/model"
)

// Controller drives the image slots. Toggle, ToggleAll and every accessor
// must be called on the UI goroutine; fetch completions are marshaled back
// through the Dispatcher.
type Controller struct {
	ctx      context.Context
	loader   fetch.ImageLoader
	display  Display
	dispatch Dispatcher
	logger   zerolog.Logger

	opts   Options
	slots  map[int]*model.Slot
	loaded *model.LoadedSet

	onStateChange func(*model.LoadedSet)
}

// NewController creates a controller for opts.Tags. ctx bounds every fetch;
// cancelling it abandons fetches still in flight.
func NewController(ctx context.Context, loader fetch.ImageLoader, display Display, dispatch Dispatcher, logger zerolog.Logger, opts Options) *Controller {
	if len(opts.Tags) == 0 {
		opts.Tags = model.DefaultTags
	}
	if opts.Width <= 0 {
		opts.Width = model.DefaultImageWidth
	}
	if opts.Height <= 0 {
		opts.Height = model.DefaultImageHeight
	}

	c := &Controller{
		ctx:      ctx,
		loader:   loader,
		display:  display,
		dispatch: dispatch,
		logger:   logger,
		opts:     opts,
		slots:    make(map[int]*model.Slot, len(opts.Tags)),
		loaded:   model.NewLoadedSet(opts.Tags),
	}
	for _, tag := range c.loaded.Universe() {
		c.slots[tag] = model.NewSlot(tag)
	}
	return c
}

// OnStateChange registers fn to receive a snapshot of the loaded set after
// every mutation.
func (c *Controller) OnStateChange(fn func(*model.LoadedSet)) {
	c.onStateChange = fn
}

// SetConfirmLoadAll switches the load-all mode
func (c *Controller) SetConfirmLoadAll(confirm bool) {
	c.opts.ConfirmLoadAll = confirm
}

// SetImageSource changes the base URL and size used for subsequent fetches
func (c *Controller) SetImageSource(baseURL string, width, height int) {
	c.opts.BaseURL = baseURL
	if width > 0 {
		c.opts.Width = width
	}
	if height > 0 {
		c.opts.Height = height
	}
}

// Tags returns slot tags in display order
func (c *Controller) Tags() []int {
	return c.loaded.Universe()
}

// Loaded returns a snapshot of the loaded set
func (c *Controller) Loaded() *model.LoadedSet {
	return c.loaded.Snapshot()
}

// Status returns the display status of a slot
func (c *Controller) Status(tag int) model.SlotStatus {
	if slot, ok := c.slots[tag]; ok {
		return slot.Status
	}
	return model.SlotStatusEmpty
}

// URLFor returns the image URL for a tag
func (c *Controller) URLFor(tag int) string {
	return model.ImageURL(c.opts.BaseURL, tag, c.opts.Width, c.opts.Height)
}

// Toggle clears the slot if it is loaded, otherwise starts loading it.
func (c *Controller) Toggle(tag int) {
	slot, ok := c.slots[tag]
	if !ok {
		c.logger.Warn().Int("tag", tag).Msg("Toggle for unknown slot ignored")
		return
	}

	if c.loaded.Contains(tag) {
		c.clearSlot(slot)
		c.loaded.Remove(tag)
		c.logger.Info().Int("tag", tag).Msg("Slot cleared")
		c.notifyStateChange()
		return
	}

	c.startLoad(slot, true)
	c.notifyStateChange()
}

// ToggleAll loads every slot that is not loaded yet, or clears every slot
// when all of them are loaded.
func (c *Controller) ToggleAll() {
	if c.loaded.IsFull() {
		for _, tag := range c.loaded.Universe() {
			c.clearSlot(c.slots[tag])
		}
		c.loaded.Clear()
		c.logger.Info().Msg("All slots cleared")
		c.notifyStateChange()
		return
	}

	missing := c.loaded.Missing()
	for _, tag := range missing {
		c.startLoad(c.slots[tag], c.opts.ConfirmLoadAll)
	}
	if !c.opts.ConfirmLoadAll {
		// Marked loaded before any fetch completes; a failed fetch leaves
		// its slot on the placeholder while the set still claims it.
		c.loaded.Fill()
	}
	c.logger.Info().
		Ints("tags", missing).
		Bool("confirm", c.opts.ConfirmLoadAll).
		Msg("Loading all slots")
	c.notifyStateChange()
}

// clearSlot shows the placeholder and invalidates any fetch in flight
func (c *Controller) clearSlot(slot *model.Slot) {
	slot.NextGeneration()
	slot.Status = model.SlotStatusEmpty
	c.display.ShowPlaceholder(slot.Tag)
	c.display.SetStatus(slot.Tag, slot.Status)
}

// startLoad dispatches a fetch for slot. When markLoaded is set the tag
// joins the loaded set once the image is shown.
func (c *Controller) startLoad(slot *model.Slot, markLoaded bool) {
	gen := slot.NextGeneration()
	previous := slot.Status
	if previous == model.SlotStatusLoading {
		previous = model.SlotStatusEmpty
	}
	slot.Status = model.SlotStatusLoading
	c.display.SetStatus(slot.Tag, slot.Status)

	tag := slot.Tag
	url := c.URLFor(tag)
	c.logger.Debug().Int("tag", tag).Str("url", url).Uint64("generation", gen).Msg("Dispatching fetch")

	go func() {
		img, err := c.loader.Load(c.ctx, url)
		c.dispatch(func() {
			c.completeLoad(tag, gen, previous, url, img, err, markLoaded)
		})
	}()
}

// completeLoad applies a fetch result on the UI goroutine
func (c *Controller) completeLoad(tag int, gen uint64, previous model.SlotStatus, url string, img image.Image, err error, markLoaded bool) {
	slot := c.slots[tag]
	if !slot.IsCurrent(gen) {
		c.logger.Debug().Int("tag", tag).Uint64("generation", gen).Msg("Dropping stale fetch result")
		return
	}

	if err != nil {
		slot.Status = previous
		c.display.SetStatus(tag, slot.Status)
		c.logger.Warn().Err(err).Int("tag", tag).Str("url", url).Msg("Image fetch failed")
		c.notifyStateChange()
		return
	}

	slot.Status = model.SlotStatusLoaded
	c.display.ShowImage(tag, img)
	c.display.SetStatus(tag, slot.Status)
	if markLoaded {
		c.loaded.Add(tag)
	}
	c.logger.Info().Int("tag", tag).Msg("Slot loaded")
	c.notifyStateChange()
}

func (c *Controller) notifyStateChange() {
	if c.onStateChange != nil {
		c.onStateChange(c.loaded.Snapshot())
	}
}
