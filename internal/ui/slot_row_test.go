package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/photo-loader/internal/model"
)

func TestSlotRow_Defaults(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(237, NewLocalization())

	if row.Tag() != 237 {
		t.Errorf("Tag() = %d, expected 237", row.Tag())
	}
	if row.HasImage() {
		t.Error("new row should show the placeholder")
	}
	if row.image.Resource == nil {
		t.Error("placeholder resource should be set")
	}
	if row.Status() != model.SlotStatusEmpty {
		t.Errorf("Status() = %v, expected %v", row.Status(), model.SlotStatusEmpty)
	}
	if row.ButtonText() != "Load" {
		t.Errorf("ButtonText() = %q, expected %q", row.ButtonText(), "Load")
	}
}

func TestSlotRow_TapCallsToggle(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(230, NewLocalization())
	var tapped []int
	row.SetOnToggle(func(tag int) { tapped = append(tapped, tag) })

	test.Tap(row.button)
	test.Tap(row.button)

	if len(tapped) != 2 || tapped[0] != 230 || tapped[1] != 230 {
		t.Errorf("tapped = %v, expected [230 230]", tapped)
	}
}

func TestSlotRow_TapWithoutCallback(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(230, NewLocalization())
	test.Tap(row.button)

	// a nil callback is logged and taps stay harmless
	row.SetOnToggle(nil)
	test.Tap(row.button)
	if row.onToggle != nil {
		t.Error("onToggle should be nil")
	}
}

func TestSlotRow_ImageAndPlaceholder(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(222, NewLocalization())

	row.SetImage(image.NewRGBA(image.Rect(0, 0, 120, 80)))
	if !row.HasImage() {
		t.Error("row should show the image")
	}
	if row.image.Resource != nil {
		t.Error("resource should be cleared when an image is shown")
	}

	row.SetPlaceholder()
	if row.HasImage() {
		t.Error("row should show the placeholder again")
	}
	if row.image.Resource == nil {
		t.Error("placeholder resource should be restored")
	}
}

func TestSlotRow_SetStatus(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(257, NewLocalization())

	tests := []struct {
		status   model.SlotStatus
		value    float64
		contains string
	}{
		{model.SlotStatusLoading, ProgressLoading, "Loading"},
		{model.SlotStatusLoaded, ProgressLoaded, "Loaded"},
		{model.SlotStatusEmpty, ProgressEmpty, "Empty"},
	}

	for _, tt := range tests {
		row.SetStatus(tt.status)
		if row.statusBar.Value != tt.value {
			t.Errorf("SetStatus(%v) value = %v, expected %v", tt.status, row.statusBar.Value, tt.value)
		}
		if got := row.statusText(); got != tt.contains && got != IconLoading+" "+tt.contains && got != IconLoaded+" "+tt.contains {
			t.Errorf("SetStatus(%v) text = %q, expected to end with %q", tt.status, got, tt.contains)
		}
	}
}

func TestSlotRow_SetLoaded(t *testing.T) {
	test.NewApp()

	l := NewLocalization()
	row := NewSlotRow(240, l)

	row.SetLoaded(true)
	if row.ButtonText() != "Clear" {
		t.Errorf("ButtonText() = %q, expected %q", row.ButtonText(), "Clear")
	}

	l.SetLanguage("pt")
	row.RefreshTexts()
	if row.ButtonText() != "Limpar" {
		t.Errorf("ButtonText() = %q, expected %q", row.ButtonText(), "Limpar")
	}

	row.SetLoaded(false)
	if row.ButtonText() != "Carregar" {
		t.Errorf("ButtonText() = %q, expected %q", row.ButtonText(), "Carregar")
	}
}

func TestSlotRow_HasImageAfterRender(t *testing.T) {
	test.NewApp()

	row := NewSlotRow(237, NewLocalization())
	window := test.NewWindow(row)
	defer window.Close()
	window.Resize(fyne.NewSize(WindowWidth, SlotImageHeight*2))

	// rendering rasterises the placeholder into the canvas image
	window.Canvas().Capture()
	if row.HasImage() {
		t.Error("rendered placeholder should not count as an image")
	}

	row.SetImage(image.NewRGBA(image.Rect(0, 0, 120, 80)))
	window.Canvas().Capture()
	if !row.HasImage() {
		t.Error("row should show the fetched image")
	}

	row.SetPlaceholder()
	window.Canvas().Capture()
	if row.HasImage() {
		t.Error("row should show the placeholder after clear")
	}
	if row.image.Resource == nil {
		t.Error("placeholder resource should be restored after clear")
	}
}
