package bootstrap

import (
	"sort"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// SurfaceFactory creates a window surface for a live instance. Window
// integrations supply one to CreateSurface.
type SurfaceFactory func(instance core1_0.CoreInstanceDriver, extension khr_surface.ExtensionDriver) (khr_surface.Surface, error)

type vkLoader struct {
	driver core1_0.GlobalDriver
}

// NewLoader builds a Loader from the platform's vkGetInstanceProcAddr.
func NewLoader(procAddr unsafe.Pointer) (Loader, error) {
	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "load vulkan driver")
	}
	return &vkLoader{driver: driver}, nil
}

func (l *vkLoader) AvailableLayers() ([]string, error) {
	layers, _, err := l.driver.AvailableLayers()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *vkLoader) AvailableExtensions() ([]string, error) {
	extensions, _, err := l.driver.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *vkLoader) CreateInstance(options core1_0.InstanceCreateInfo) (Instance, error) {
	instanceDriver, _, err := l.driver.CreateInstance(nil, options)
	if err != nil {
		return nil, err
	}
	return &vkInstance{driver: instanceDriver}, nil
}

type vkInstance struct {
	driver core1_0.CoreInstanceDriver
}

func (i *vkInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	handles, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]PhysicalDevice, 0, len(handles))
	for _, handle := range handles {
		devices = append(devices, &vkPhysicalDevice{driver: i.driver, handle: handle})
	}
	return devices, nil
}

func (i *vkInstance) CreateDebugMessenger(options ext_debug_utils.DebugUtilsMessengerCreateInfo) (Messenger, error) {
	debugDriver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	messenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, options)
	if err != nil {
		return nil, err
	}
	return &vkMessenger{driver: debugDriver, handle: messenger}, nil
}

func (i *vkInstance) Destroy() {
	i.driver.DestroyInstance(nil)
}

// CreateSurface binds a window surface to instance. The instance must have
// been created by a Loader from NewLoader.
func CreateSurface(instance Instance, factory SurfaceFactory) (Surface, error) {
	vkInst, ok := instance.(*vkInstance)
	if !ok {
		return nil, errors.Newf("cannot create a surface for instance of type %T", instance)
	}

	extension := khr_surface.CreateExtensionDriverFromCoreDriver(vkInst.driver)
	handle, err := factory(vkInst.driver, extension)
	if err != nil {
		return nil, err
	}
	return &vkSurface{extension: extension, handle: handle}, nil
}

type vkMessenger struct {
	driver ext_debug_utils.ExtensionDriver
	handle ext_debug_utils.DebugUtilsMessenger
}

func (m *vkMessenger) Destroy() {
	m.driver.DestroyDebugUtilsMessenger(m.handle, nil)
}

type vkPhysicalDevice struct {
	driver core1_0.CoreInstanceDriver
	handle core1_0.PhysicalDevice
}

func (p *vkPhysicalDevice) Properties() (*DeviceProperties, error) {
	properties, err := p.driver.GetPhysicalDeviceProperties(p.handle)
	if err != nil {
		return nil, err
	}

	return &DeviceProperties{
		Name:              properties.DriverName,
		Type:              properties.DriverType,
		VendorID:          properties.VendorID,
		DeviceID:          properties.DeviceID,
		PipelineCacheUUID: properties.PipelineCacheUUID,
	}, nil
}

func (p *vkPhysicalDevice) Features() DeviceFeatures {
	features := p.driver.GetPhysicalDeviceFeatures(p.handle)
	return DeviceFeatures{GeometryShader: features.GeometryShader}
}

func (p *vkPhysicalDevice) QueueFamilies() []core1_0.QueueFlags {
	queueFamilies := p.driver.GetPhysicalDeviceQueueFamilyProperties(p.handle)

	flags := make([]core1_0.QueueFlags, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		flags = append(flags, queueFamily.QueueFlags)
	}
	return flags
}

func (p *vkPhysicalDevice) Extensions() ([]string, error) {
	extensions, _, err := p.driver.EnumerateDeviceExtensionProperties(p.handle)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (p *vkPhysicalDevice) CreateDevice(options core1_0.DeviceCreateInfo) (Device, error) {
	deviceDriver, _, err := p.driver.CreateDevice(p.handle, nil, options)
	if err != nil {
		return nil, err
	}
	return &vkDevice{driver: deviceDriver}, nil
}

type vkSurface struct {
	extension khr_surface.ExtensionDriver
	handle    khr_surface.Surface
}

func physicalHandle(device PhysicalDevice) (core1_0.PhysicalDevice, error) {
	vkDev, ok := device.(*vkPhysicalDevice)
	if !ok {
		return core1_0.PhysicalDevice{}, errors.Newf("physical device of type %T is not bound to this surface", device)
	}
	return vkDev.handle, nil
}

func (s *vkSurface) SupportsPresentation(device PhysicalDevice, queueFamily int) (bool, error) {
	handle, err := physicalHandle(device)
	if err != nil {
		return false, err
	}

	supported, _, err := s.extension.GetPhysicalDeviceSurfaceSupport(s.handle, handle, queueFamily)
	return supported, err
}

func (s *vkSurface) Capabilities(device PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	handle, err := physicalHandle(device)
	if err != nil {
		return nil, err
	}

	capabilities, _, err := s.extension.GetPhysicalDeviceSurfaceCapabilities(s.handle, handle)
	return capabilities, err
}

func (s *vkSurface) Formats(device PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	handle, err := physicalHandle(device)
	if err != nil {
		return nil, err
	}

	formats, _, err := s.extension.GetPhysicalDeviceSurfaceFormats(s.handle, handle)
	return formats, err
}

func (s *vkSurface) PresentModes(device PhysicalDevice) ([]khr_surface.PresentMode, error) {
	handle, err := physicalHandle(device)
	if err != nil {
		return nil, err
	}

	presentModes, _, err := s.extension.GetPhysicalDeviceSurfacePresentModes(s.handle, handle)
	return presentModes, err
}

func (s *vkSurface) Destroy() {
	s.extension.DestroySurface(s.handle, nil)
}

type vkDevice struct {
	driver core1_0.CoreDeviceDriver
}

func (d *vkDevice) Queue(queueFamily, index int) Queue {
	return Queue{
		Family: queueFamily,
		Handle: d.driver.GetQueue(queueFamily, index),
	}
}

func (d *vkDevice) Destroy() {
	d.driver.DestroyDevice(nil)
}
