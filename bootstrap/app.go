package bootstrap

import (
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

// Platform is the windowing system.
type Platform interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)
	Quit()
}

// Window is a native window that Vulkan can draw to. It is created hidden
// and only shown once setup has succeeded.
type Window interface {
	RequiredInstanceExtensions() []string
	CreateSurface(instance Instance) (Surface, error)
	Show()
	ShouldClose() bool
	PollEvents()
	Destroy()
}

// EventSource is the part of a window the event loop needs.
type EventSource interface {
	ShouldClose() bool
	PollEvents()
}

// RunEventLoop polls events until a close is requested. No per-frame work
// happens yet.
func RunEventLoop(events EventSource) {
	for !events.ShouldClose() {
		events.PollEvents()
	}
}

// Application sets up a window and a Vulkan device, then idles until the
// window is closed. Log defaults to the logrus standard logger.
type Application struct {
	Config   Config
	Platform Platform
	// OpenLoader loads the graphics API through the window system. It is
	// called once the window exists.
	OpenLoader func(window Window) (Loader, error)
	Log        logrus.FieldLogger

	teardown *Teardown

	window    Window
	instance  Instance
	messenger Messenger
	surface   Surface
	selected  SelectedDevice
	device    LogicalDevice
}

// Run performs setup, idles in the event loop and releases everything it
// acquired. Resources are released on every return path.
func (app *Application) Run() error {
	if app.Log == nil {
		app.Log = logrus.StandardLogger()
	}
	app.teardown = NewTeardown(app.Log)
	defer app.teardown.Release()

	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	app.window.Show()
	app.Log.Info("setup complete")
	RunEventLoop(app.window)
	return nil
}

func (app *Application) stage(name string, fn func() error) error {
	start := hrtime.Now()
	err := fn()
	app.Log.WithFields(logrus.Fields{
		"stage":   name,
		"elapsed": hrtime.Since(start),
	}).Debug("setup stage finished")
	return err
}

func (app *Application) initWindow() error {
	return app.stage("window", func() error {
		if err := app.Platform.Init(); err != nil {
			return markf(ErrWindowCreationFailed, err, "initialize platform")
		}
		app.teardown.Defer("platform", app.Platform.Quit)

		window, err := app.Platform.CreateWindow(app.Config.Width, app.Config.Height, app.Config.Title)
		if err != nil {
			return markf(ErrWindowCreationFailed, err, "create window")
		}
		app.window = window
		app.teardown.Defer("window", window.Destroy)
		return nil
	})
}

func (app *Application) initVulkan() error {
	err := app.stage("instance", app.createInstance)
	if err != nil {
		return err
	}

	err = app.stage("debug messenger", app.setupDebugMessenger)
	if err != nil {
		return err
	}

	err = app.stage("surface", app.createSurface)
	if err != nil {
		return err
	}

	err = app.stage("physical device", app.pickPhysicalDevice)
	if err != nil {
		return err
	}

	return app.stage("logical device", app.createLogicalDevice)
}

func (app *Application) createInstance() error {
	loader, err := app.OpenLoader(app.window)
	if err != nil {
		return markf(ErrInstanceCreationFailed, err, "open loader")
	}

	instance, err := CreateInstance(loader, app.Config, app.window.RequiredInstanceExtensions(), app.Log)
	if err != nil {
		return err
	}
	app.instance = instance
	app.teardown.Defer("instance", instance.Destroy)
	return nil
}

func (app *Application) setupDebugMessenger() error {
	messenger, err := SetupDebugMessenger(app.instance, app.Config, app.Log)
	if err != nil {
		return err
	}
	if messenger != nil {
		app.messenger = messenger
		// Released after the device and surface; only the instance must outlive it.
		app.teardown.Defer("debug messenger", messenger.Destroy)
	}
	return nil
}

func (app *Application) createSurface() error {
	surface, err := app.window.CreateSurface(app.instance)
	if err != nil {
		return markf(ErrSurfaceCreationFailed, err, "create window surface")
	}
	app.surface = surface
	app.teardown.Defer("surface", surface.Destroy)
	return nil
}

func (app *Application) pickPhysicalDevice() error {
	selected, err := PickPhysicalDevice(app.instance, app.surface, app.Config, app.Log)
	if err != nil {
		return err
	}
	app.selected = selected
	return nil
}

func (app *Application) createLogicalDevice() error {
	device, err := CreateLogicalDevice(app.selected, app.Config, app.Log)
	if err != nil {
		return err
	}
	app.device = device
	app.teardown.Defer("logical device", device.Device.Destroy)
	return nil
}
