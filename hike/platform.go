package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vkngwrapper/hike/bootstrap"
)

type sdlPlatform struct{}

func (sdlPlatform) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func (sdlPlatform) Quit() {
	sdl.Quit()
}

func (sdlPlatform) CreateWindow(width, height int, title string) (bootstrap.Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_HIDDEN|sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, err
	}
	return &sdlWindow{window: window}, nil
}

type sdlWindow struct {
	window         *sdl.Window
	closeRequested bool
}

func (w *sdlWindow) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *sdlWindow) CreateSurface(instance bootstrap.Instance) (bootstrap.Surface, error) {
	return bootstrap.CreateSurface(instance, func(instanceDriver core1_0.CoreInstanceDriver, extension khr_surface.ExtensionDriver) (khr_surface.Surface, error) {
		return vkng_sdl2.CreateSurface(instanceDriver.Instance(), extension, w.window)
	})
}

func (w *sdlWindow) Show() {
	w.window.Show()
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closeRequested
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closeRequested = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.closeRequested = true
			}
		}
	}
}

func (w *sdlWindow) Destroy() {
	w.window.Destroy()
}

func openLoader(bootstrap.Window) (bootstrap.Loader, error) {
	return bootstrap.NewLoader(sdl.VulkanGetVkGetInstanceProcAddr())
}
