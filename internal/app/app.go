package app

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/photo-loader/internal/config"
	"github.com/ytget/photo-loader/internal/fetch"
	"github.com/ytget/photo-loader/internal/gallery"
	"github.com/ytget/photo-loader/internal/model"
	"github.com/ytget/photo-loader/internal/ui"
)

const (
	AppID   = "com.ytget.photo-loader"
	AppName = "Photo Loader"
)

// App wires settings, the image fetcher, the gallery controller and the screen
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	settings   *config.Settings
	root       *ui.RootUI
	controller *gallery.Controller
	logger     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds the application on top of fyneApp. Fetches started by the
// controller are cancelled when the window closes or Shutdown is called.
func New(fyneApp fyne.App, env *config.Environment, version string) *App {
	logger := config.GetLogger().With().Str("version", version).Logger()

	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettingsWithEnvironment(fyneApp, env)

	fetchLogger := logger.With().Str("component", "fetch").Logger()
	fetchSvc := fetch.NewService(fetch.Options{
		Timeout:   time.Duration(settings.GetRequestTimeoutSeconds()) * time.Second,
		UserAgent: settings.GetUserAgent(),
		Logger:    &fetchLogger,
	})

	ctx, cancel := context.WithCancel(context.Background())

	root := ui.NewRootUI(window, fyneApp, settings, model.DefaultTags)
	controller := gallery.NewController(
		ctx,
		fetch.NewLoader(fetchSvc),
		root,
		fyne.Do,
		logger.With().Str("component", "gallery").Logger(),
		gallery.Options{
			Tags:           model.DefaultTags,
			BaseURL:        settings.GetBaseURL(),
			Width:          settings.GetImageWidth(),
			Height:         settings.GetImageHeight(),
			ConfirmLoadAll: settings.GetConfirmLoadAll(),
		},
	)
	root.AttachController(controller)

	a := &App{
		fyneApp:    fyneApp,
		window:     window,
		settings:   settings,
		root:       root,
		controller: controller,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
	window.SetOnClosed(a.Shutdown)

	logger.Info().
		Str("base_url", settings.GetBaseURL()).
		Int("timeout_seconds", settings.GetRequestTimeoutSeconds()).
		Bool("confirm_load_all", settings.GetConfirmLoadAll()).
		Msg("Application initialized")
	return a
}

// Controller returns the gallery controller
func (a *App) Controller() *gallery.Controller {
	return a.controller
}

// Root returns the main screen
func (a *App) Root() *ui.RootUI {
	return a.root
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.window
}

// Context is cancelled on shutdown
func (a *App) Context() context.Context {
	return a.ctx
}

// Shutdown abandons in-flight fetches
func (a *App) Shutdown() {
	a.cancel()
}

// ShowAndRun shows the window and blocks until the app quits
func (a *App) ShowAndRun() {
	a.window.ShowAndRun()
	a.Shutdown()
	a.logger.Info().Msg("Application stopped")
}

// Run loads configuration, sets up logging and runs the app until quit
func Run(version string) {
	env, err := config.LoadEnvironment()
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Failed to load configuration, using defaults")
		env = config.DefaultEnvironment()
	}
	config.InitLogger(env.LogLevel)

	logger := config.GetLogger()
	logger.Info().Str("version", version).Msgf("%s starting", AppName)

	New(fyneapp.NewWithID(AppID), env, version).ShowAndRun()
}
