package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button sized for touch on mobile devices
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	return m.WrapTouchTarget(btn)
}

// WrapTouchTarget gives obj at least the minimum touch height on mobile
func (m *MobileUI) WrapTouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(obj.MinSize().Width, MobileButtonHeight)), obj)
}

// GetMobileSpacing returns the vertical gap between rows
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return ScreenSpacing // Larger spacing for mobile
	}
	return RowSpacing
}

// GetMobilePadding returns the side margin around the screen content
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return ScreenSideMargin + 4 // Larger padding for mobile
	}
	return ScreenSideMargin
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// ArrangeRows lays rows out in one column, or two columns on a landscape phone
func (m *MobileUI) ArrangeRows(rows ...fyne.CanvasObject) *fyne.Container {
	spacing := m.GetMobileSpacing()
	spaced := make([]fyne.CanvasObject, 0, len(rows))
	for _, row := range rows {
		spaced = append(spaced, container.New(layout.NewCustomPaddedLayout(0, spacing, 0, 0), row))
	}
	if m.IsMobileDevice() && m.IsLandscape() {
		return container.NewGridWithColumns(2, spaced...)
	}
	return container.NewVBox(spaced...)
}

// Pad surrounds content with the platform side margin
func (m *MobileUI) Pad(content fyne.CanvasObject) fyne.CanvasObject {
	pad := m.GetMobilePadding()
	return container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), content)
}
