package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL        = "base_url"
	KeyImageWidth     = "image_width"
	KeyImageHeight    = "image_height"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyConfirmLoadAll = "confirm_load_all"
	KeyLanguage       = "app_language"
	KeyUserAgent      = "user_agent"
)

// Default values
const (
	DefaultRequestTimeoutSec = 30
	DefaultConfirmLoadAll    = false
	DefaultLanguage          = "system"
)

// Bounds for clamped settings
const (
	MinRequestTimeoutSec = 1
	MaxRequestTimeoutSec = 120
	MinImageSide         = 16
	MaxImageSide         = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env *Environment
}

// NewSettings creates a new settings manager with built-in defaults
func NewSettings(app fyne.App) *Settings {
	return NewSettingsWithEnvironment(app, DefaultEnvironment())
}

// NewSettingsWithEnvironment creates a settings manager whose defaults come from env
func NewSettingsWithEnvironment(app fyne.App, env *Environment) *Settings {
	if env == nil {
		env = DefaultEnvironment()
	}
	return &Settings{app: app, env: env}
}

// GetBaseURL returns the image service base URL
func (s *Settings) GetBaseURL() string {
	base := s.app.Preferences().String(KeyBaseURL)
	if base == "" {
		base = s.env.BaseURL
		s.SetBaseURL(base)
		return strings.TrimRight(base, "/")
	}
	return base
}

// SetBaseURL sets the image service base URL
func (s *Settings) SetBaseURL(base string) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = strings.TrimRight(s.env.BaseURL, "/")
	}
	s.app.Preferences().SetString(KeyBaseURL, base)
}

// GetImageWidth returns the requested image width in pixels
func (s *Settings) GetImageWidth() int {
	value := s.app.Preferences().Int(KeyImageWidth)
	if value <= 0 {
		s.SetImageWidth(s.env.ImageWidth)
		return clampSide(s.env.ImageWidth)
	}
	return value
}

// SetImageWidth sets the requested image width in pixels
func (s *Settings) SetImageWidth(width int) {
	s.app.Preferences().SetInt(KeyImageWidth, clampSide(width))
}

// GetImageHeight returns the requested image height in pixels
func (s *Settings) GetImageHeight() int {
	value := s.app.Preferences().Int(KeyImageHeight)
	if value <= 0 {
		s.SetImageHeight(s.env.ImageHeight)
		return clampSide(s.env.ImageHeight)
	}
	return value
}

// SetImageHeight sets the requested image height in pixels
func (s *Settings) SetImageHeight(height int) {
	s.app.Preferences().SetInt(KeyImageHeight, clampSide(height))
}

// GetRequestTimeoutSeconds returns the HTTP timeout for image fetches
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		def := s.env.RequestTimeoutSeconds()
		s.SetRequestTimeoutSeconds(def)
		return clampTimeout(def)
	}
	return value
}

// SetRequestTimeoutSeconds sets the HTTP timeout for image fetches
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clampTimeout(seconds))
}

// GetConfirmLoadAll returns whether "load all" marks slots loaded only after
// their fetch succeeds
func (s *Settings) GetConfirmLoadAll() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmLoadAll, s.env.ConfirmLoadAll)
}

// SetConfirmLoadAll sets whether "load all" waits for fetch confirmation
func (s *Settings) SetConfirmLoadAll(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmLoadAll, confirm)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		lang = s.env.Language
		if lang == "" {
			lang = DefaultLanguage
		}
		s.SetLanguage(lang)
		return lang
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetUserAgent returns the User-Agent sent with image requests
func (s *Settings) GetUserAgent() string {
	ua := s.app.Preferences().String(KeyUserAgent)
	if ua == "" {
		if s.env.UserAgent != "" {
			return s.env.UserAgent
		}
		return DefaultUserAgent
	}
	return ua
}

// SetUserAgent sets the User-Agent; an empty value restores the default
func (s *Settings) SetUserAgent(ua string) {
	s.app.Preferences().SetString(KeyUserAgent, strings.TrimSpace(ua))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampTimeout(seconds int) int {
	if seconds < MinRequestTimeoutSec {
		return MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		return MaxRequestTimeoutSec
	}
	return seconds
}

func clampSide(px int) int {
	if px < MinImageSide {
		return MinImageSide
	}
	if px > MaxImageSide {
		return MaxImageSide
	}
	return px
}
