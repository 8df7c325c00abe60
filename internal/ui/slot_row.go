package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/photo-loader/internal/config"
	"github.com/ytget/photo-loader/internal/model"
)

// SlotRow is one image slot: the picture, a status bar and the Load/Clear button
type SlotRow struct {
	widget.BaseWidget

	tag          int
	status       model.SlotStatus
	loaded       bool
	hasImage     bool
	localization *Localization

	// UI components
	image     *canvas.Image
	statusBar *widget.ProgressBar
	button    *widget.Button

	onToggle func(tag int)
}

// NewSlotRow creates a row for tag showing the placeholder
func NewSlotRow(tag int, localization *Localization) *SlotRow {
	sr := &SlotRow{
		tag:          tag,
		status:       model.SlotStatusEmpty,
		localization: localization,
	}
	sr.ExtendBaseWidget(sr)
	sr.createUI()
	return sr
}

// SetOnToggle sets the callback invoked when the row button is tapped
func (sr *SlotRow) SetOnToggle(onToggle func(tag int)) {
	if onToggle == nil {
		logger := config.GetLogger()
		logger.Warn().Int("tag", sr.tag).Msg("SlotRow toggle callback is nil")
	}
	sr.onToggle = onToggle
}

// Tag returns the slot identifier
func (sr *SlotRow) Tag() int {
	return sr.tag
}

// Status returns the status last shown by the row
func (sr *SlotRow) Status() model.SlotStatus {
	return sr.status
}

// HasImage reports whether the row shows a fetched image. The canvas
// rasterises the placeholder resource into Image, so Image alone can't tell.
func (sr *SlotRow) HasImage() bool {
	return sr.hasImage
}

// ButtonText returns the current button label
func (sr *SlotRow) ButtonText() string {
	return sr.button.Text
}

func (sr *SlotRow) createUI() {
	sr.image = canvas.NewImageFromResource(PlaceholderResource())
	sr.image.FillMode = canvas.ImageFillContain
	sr.image.SetMinSize(fyne.NewSize(SlotImageWidth, SlotImageHeight))

	sr.statusBar = widget.NewProgressBar()
	sr.statusBar.TextFormatter = sr.statusText

	sr.button = widget.NewButton(sr.localization.GetText(KeyLoad), func() {
		if sr.onToggle != nil {
			sr.onToggle(sr.tag)
		}
	})
	sr.button.Importance = widget.HighImportance
}

// SetImage shows a fetched image
func (sr *SlotRow) SetImage(img image.Image) {
	sr.image.Resource = nil
	sr.image.Image = img
	sr.hasImage = img != nil
	sr.image.Refresh()
}

// SetPlaceholder shows the placeholder icon
func (sr *SlotRow) SetPlaceholder() {
	sr.image.Image = nil
	sr.image.Resource = PlaceholderResource()
	sr.hasImage = false
	sr.image.Refresh()
}

// SetStatus updates the status bar
func (sr *SlotRow) SetStatus(status model.SlotStatus) {
	sr.status = status
	switch status {
	case model.SlotStatusLoading:
		sr.statusBar.SetValue(ProgressLoading)
	case model.SlotStatusLoaded:
		sr.statusBar.SetValue(ProgressLoaded)
	default:
		sr.statusBar.SetValue(ProgressEmpty)
	}
}

// SetLoaded switches the button between Load and Clear
func (sr *SlotRow) SetLoaded(loaded bool) {
	sr.loaded = loaded
	sr.refreshTexts()
}

// RefreshTexts reapplies localized labels
func (sr *SlotRow) RefreshTexts() {
	sr.refreshTexts()
	sr.statusBar.Refresh()
}

func (sr *SlotRow) refreshTexts() {
	if sr.loaded {
		sr.button.SetText(sr.localization.GetText(KeyClear))
		sr.button.Importance = widget.MediumImportance
	} else {
		sr.button.SetText(sr.localization.GetText(KeyLoad))
		sr.button.Importance = widget.HighImportance
	}
	sr.button.Refresh()
}

func (sr *SlotRow) statusText() string {
	switch sr.status {
	case model.SlotStatusLoading:
		return IconLoading + " " + sr.localization.GetText(KeyStatusLoading)
	case model.SlotStatusLoaded:
		return IconLoaded + " " + sr.localization.GetText(KeyStatusLoaded)
	default:
		return sr.localization.GetText(KeyStatusEmpty)
	}
}

// CreateRenderer creates the widget renderer
func (sr *SlotRow) CreateRenderer() fyne.WidgetRenderer {
	button := container.New(layout.NewGridWrapLayout(fyne.NewSize(SlotButtonWidth, SlotButtonHeight)), sr.button)
	content := container.NewBorder(
		nil,
		nil,
		sr.image,
		container.NewCenter(button),
		container.NewVBox(layout.NewSpacer(), sr.statusBar, layout.NewSpacer()),
	)
	return widget.NewSimpleRenderer(content)
}
