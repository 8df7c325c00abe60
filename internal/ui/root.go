package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/photo-loader/internal/config"
	"github.com/ytget/photo-loader/internal/model"
)

// GalleryController is the slot state machine driven by the screen
type GalleryController interface {
	Toggle(tag int)
	ToggleAll()
	SetConfirmLoadAll(confirm bool)
	SetImageSource(baseURL string, width, height int)
	OnStateChange(fn func(*model.LoadedSet))
	Loaded() *model.LoadedSet
}

// RootUI represents the main UI structure. It is the controller's Display.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       zerolog.Logger

	tags        []int
	rows        map[int]*SlotRow
	loadAllBtn  *widget.Button
	statusLabel *widget.Label

	controller GalleryController
	allLoaded  bool
	loadedLen  int
}

// NewRootUI creates and initializes the main UI with one row per tag
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, tags []int) *RootUI {
	if len(tags) == 0 {
		tags = model.DefaultTags
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		logger:       config.GetLogger().With().Str("component", "ui").Logger(),
		tags:         append([]int(nil), tags...),
		rows:         make(map[int]*SlotRow, len(tags)),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// AttachController connects the screen to the controller and syncs labels
// with its current state.
func (ui *RootUI) AttachController(controller GalleryController) {
	ui.controller = controller
	controller.OnStateChange(ui.onStateChange)
	ui.onStateChange(controller.Loaded())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	rowObjects := make([]fyne.CanvasObject, 0, len(ui.tags))
	for _, tag := range ui.tags {
		row := NewSlotRow(tag, ui.localization)
		row.SetOnToggle(ui.onToggle)
		ui.rows[tag] = row
		rowObjects = append(rowObjects, row)
	}

	ui.loadAllBtn = widget.NewButton(ui.localization.GetText(KeyLoadAll), ui.onLoadAll)
	ui.loadAllBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	// Header with optional logo
	var header fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.statusLabel)
	} else {
		header = container.NewBorder(nil, nil, nil, settingsBtn, ui.statusLabel)
	}

	bottom := ui.mobile.WrapTouchTarget(ui.loadAllBtn)

	content := container.NewBorder(
		header,
		bottom,
		nil,
		nil,
		container.NewVScroll(ui.mobile.ArrangeRows(rowObjects...)),
	)

	ui.window.SetContent(ui.mobile.Pad(content))
	ui.refreshStatusLine()

	ui.logger.Debug().Ints("tags", ui.tags).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	for _, row := range ui.rows {
		row.RefreshTexts()
	}
	ui.refreshLoadAllButton()
	ui.refreshStatusLine()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running screen
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	if ui.controller != nil {
		ui.controller.SetConfirmLoadAll(ui.settings.GetConfirmLoadAll())
		ui.controller.SetImageSource(ui.settings.GetBaseURL(), ui.settings.GetImageWidth(), ui.settings.GetImageHeight())
	}
	ui.logger.Info().
		Str("base_url", ui.settings.GetBaseURL()).
		Bool("confirm_load_all", ui.settings.GetConfirmLoadAll()).
		Msg("Settings applied")
}

// onToggle forwards a row button tap
func (ui *RootUI) onToggle(tag int) {
	if ui.controller == nil {
		ui.logger.Warn().Int("tag", tag).Msg("Tap before controller attached")
		return
	}
	ui.controller.Toggle(tag)
}

// onLoadAll forwards the load-all button tap
func (ui *RootUI) onLoadAll() {
	if ui.controller == nil {
		ui.logger.Warn().Msg("Load all before controller attached")
		return
	}
	ui.controller.ToggleAll()
}

// onStateChange mirrors the loaded set into button labels and the status line
func (ui *RootUI) onStateChange(loaded *model.LoadedSet) {
	if loaded == nil {
		return
	}
	for tag, row := range ui.rows {
		row.SetLoaded(loaded.Contains(tag))
	}
	ui.allLoaded = loaded.IsFull()
	ui.loadedLen = loaded.Len()
	ui.refreshLoadAllButton()
	ui.refreshStatusLine()
}

func (ui *RootUI) refreshLoadAllButton() {
	if ui.allLoaded {
		ui.loadAllBtn.SetText(ui.localization.GetText(KeyClearAll))
	} else {
		ui.loadAllBtn.SetText(ui.localization.GetText(KeyLoadAll))
	}
}

func (ui *RootUI) refreshStatusLine() {
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyLoadedCount), ui.loadedLen, len(ui.tags)))
}

// Row returns the row for tag, or nil
func (ui *RootUI) Row(tag int) *SlotRow {
	return ui.rows[tag]
}

// LoadAllText returns the current label of the load-all button
func (ui *RootUI) LoadAllText() string {
	return ui.loadAllBtn.Text
}

// ShowImage displays img in the slot for tag
func (ui *RootUI) ShowImage(tag int, img image.Image) {
	if row := ui.lookup(tag); row != nil {
		row.SetImage(img)
	}
}

// ShowPlaceholder resets the slot for tag to the placeholder icon
func (ui *RootUI) ShowPlaceholder(tag int) {
	if row := ui.lookup(tag); row != nil {
		row.SetPlaceholder()
	}
}

// SetStatus updates the status bar of the slot for tag
func (ui *RootUI) SetStatus(tag int, status model.SlotStatus) {
	if row := ui.lookup(tag); row != nil {
		row.SetStatus(status)
	}
}

func (ui *RootUI) lookup(tag int) *SlotRow {
	row, ok := ui.rows[tag]
	if !ok {
		ui.logger.Warn().Int("tag", tag).Msg("No row for slot")
		return nil
	}
	return row
}
