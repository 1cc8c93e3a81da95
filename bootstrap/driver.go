package bootstrap

import (
	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Loader is the global entry point of the graphics API: everything that can
// be queried or created before an instance exists.
type Loader interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(options core1_0.InstanceCreateInfo) (Instance, error)
}

type Instance interface {
	PhysicalDevices() ([]PhysicalDevice, error)
	CreateDebugMessenger(options ext_debug_utils.DebugUtilsMessengerCreateInfo) (Messenger, error)
	Destroy()
}

type Messenger interface {
	Destroy()
}

// PhysicalDevice is a non-owning view of one enumerated GPU.
type PhysicalDevice interface {
	Properties() (*DeviceProperties, error)
	Features() DeviceFeatures
	QueueFamilies() []core1_0.QueueFlags
	Extensions() ([]string, error)
	CreateDevice(options core1_0.DeviceCreateInfo) (Device, error)
}

// Surface is a drawable target bound to a window and to the instance that
// created it.
type Surface interface {
	SupportsPresentation(device PhysicalDevice, queueFamily int) (bool, error)
	Capabilities(device PhysicalDevice) (*khr_surface.SurfaceCapabilities, error)
	Formats(device PhysicalDevice) ([]khr_surface.SurfaceFormat, error)
	PresentModes(device PhysicalDevice) ([]khr_surface.PresentMode, error)
	Destroy()
}

type Device interface {
	Queue(queueFamily, index int) Queue
	Destroy()
}

type Queue struct {
	Family int
	Handle core1_0.Queue
}

type DeviceProperties struct {
	Name              string
	Type              core1_0.PhysicalDeviceType
	VendorID          uint32
	DeviceID          uint32
	PipelineCacheUUID uuid.UUID
}

type DeviceFeatures struct {
	GeometryShader bool
}
