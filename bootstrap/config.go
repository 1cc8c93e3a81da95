package bootstrap

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "First Window"

	ValidationLayerName = "VK_LAYER_KHRONOS_validation"
)

// Config is the fixed setup configuration. It is built once by
// DefaultConfig and handed to each setup step.
type Config struct {
	Width  int
	Height int
	Title  string

	ApplicationName string
	EngineName      string

	// EnableDiagnostics turns on the validation layer and the debug
	// messenger. Compiled in; see diagnosticsEnabled.
	EnableDiagnostics bool
	ValidationLayers  []string
	DeviceExtensions  []string

	// RejectedDeviceNames lists physical devices that are never selected,
	// by exact device name.
	RejectedDeviceNames []string

	LogLevel logrus.Level
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,

		ApplicationName: "Hello Triangle",
		EngineName:      "No Engine",

		EnableDiagnostics: diagnosticsEnabled,
		ValidationLayers:  []string{ValidationLayerName},
		DeviceExtensions:  []string{khr_swapchain.ExtensionName},

		LogLevel: logrus.InfoLevel,
	}
}

// Layers returns the layers requested at both instance and device level.
func (c Config) Layers() []string {
	if !c.EnableDiagnostics {
		return nil
	}
	return append([]string(nil), c.ValidationLayers...)
}

func (c Config) rejectsDevice(name string) bool {
	for _, rejected := range c.RejectedDeviceNames {
		if rejected == name {
			return true
		}
	}
	return false
}
