package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "photo-loader.png"
)

// PlaceholderResource is shown in a slot that has no image
func PlaceholderResource() fyne.Resource {
	return theme.MediaPhotoIcon()
}

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
