package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/photo-loader/internal/config"
	"github.com/ytget/photo-loader/internal/model"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	baseURLEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	confirmCheck   *widget.Check
	languageSelect *widget.Select

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written to settings.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(model.DefaultBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeoutSec) + "-" + strconv.Itoa(config.MaxRequestTimeoutSec))

	sd.confirmCheck = widget.NewCheck(text(KeyConfirmLoadAll), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyBaseURL)),
		sd.baseURLEntry,

		widget.NewLabel(text(KeyRequestTimeout)),
		sd.timeoutEntry,
		widget.NewLabel(text(KeyRestartRequired)),

		widget.NewSeparator(),
		sd.confirmCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmLoadAll())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	if base := strings.TrimSpace(sd.baseURLEntry.Text); base != "" {
		sd.settings.SetBaseURL(base)
	}

	if timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeoutSeconds(timeout)
		}
	}

	sd.settings.SetConfirmLoadAll(sd.confirmCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
