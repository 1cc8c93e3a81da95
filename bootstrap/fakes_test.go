package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

type recorder struct {
	events []string
}

func (r *recorder) add(event string) {
	if r != nil {
		r.events = append(r.events, event)
	}
}

func testLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

type fakeLoader struct {
	layers     []string
	layersErr  error
	extensions []string
	createErr  error
	instance   *fakeInstance
	created    *core1_0.InstanceCreateInfo
	rec        *recorder
}

func (l *fakeLoader) AvailableLayers() ([]string, error) {
	return l.layers, l.layersErr
}

func (l *fakeLoader) AvailableExtensions() ([]string, error) {
	return l.extensions, nil
}

func (l *fakeLoader) CreateInstance(options core1_0.InstanceCreateInfo) (Instance, error) {
	if l.createErr != nil {
		return nil, l.createErr
	}
	l.created = &options
	l.rec.add("create instance")
	if l.instance == nil {
		l.instance = &fakeInstance{rec: l.rec}
	}
	return l.instance, nil
}

type fakeInstance struct {
	devices          []PhysicalDevice
	enumerateErr     error
	messengerErr     error
	messengerOptions *ext_debug_utils.DebugUtilsMessengerCreateInfo
	rec              *recorder
}

func (i *fakeInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	return i.devices, i.enumerateErr
}

func (i *fakeInstance) CreateDebugMessenger(options ext_debug_utils.DebugUtilsMessengerCreateInfo) (Messenger, error) {
	if i.messengerErr != nil {
		return nil, i.messengerErr
	}
	i.messengerOptions = &options
	i.rec.add("create debug messenger")
	return &fakeMessenger{rec: i.rec}, nil
}

func (i *fakeInstance) Destroy() {
	i.rec.add("destroy instance")
}

type fakeMessenger struct {
	rec *recorder
}

func (m *fakeMessenger) Destroy() {
	m.rec.add("destroy debug messenger")
}

type fakePhysicalDevice struct {
	name            string
	deviceType      core1_0.PhysicalDeviceType
	geometryShader  bool
	queueFamilies   []core1_0.QueueFlags
	presentFamilies map[int]bool
	presentErr      error
	extensions      []string
	formats         []khr_surface.SurfaceFormat
	presentModes    []khr_surface.PresentMode
	propertiesErr   error
	createErr       error

	presentQueries   []int
	swapchainQueried bool
	createdWith      *core1_0.DeviceCreateInfo
	rec              *recorder
}

// suitableDevice is a discrete GPU with one queue family that does
// graphics and presentation and a usable swapchain.
func suitableDevice(name string) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		name:            name,
		deviceType:      core1_0.PhysicalDeviceTypeDiscreteGPU,
		geometryShader:  true,
		queueFamilies:   []core1_0.QueueFlags{core1_0.QueueGraphics | core1_0.QueueCompute},
		presentFamilies: map[int]bool{0: true},
		extensions:      []string{khr_swapchain.ExtensionName},
		formats:         []khr_surface.SurfaceFormat{{}},
		presentModes:    []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
	}
}

func (d *fakePhysicalDevice) Properties() (*DeviceProperties, error) {
	if d.propertiesErr != nil {
		return nil, d.propertiesErr
	}
	return &DeviceProperties{Name: d.name, Type: d.deviceType}, nil
}

func (d *fakePhysicalDevice) Features() DeviceFeatures {
	return DeviceFeatures{GeometryShader: d.geometryShader}
}

func (d *fakePhysicalDevice) QueueFamilies() []core1_0.QueueFlags {
	return d.queueFamilies
}

func (d *fakePhysicalDevice) Extensions() ([]string, error) {
	return d.extensions, nil
}

func (d *fakePhysicalDevice) CreateDevice(options core1_0.DeviceCreateInfo) (Device, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.createdWith = &options
	d.rec.add("create logical device")
	return &fakeDevice{rec: d.rec}, nil
}

type fakeSurface struct {
	rec *recorder
}

func (s *fakeSurface) SupportsPresentation(device PhysicalDevice, queueFamily int) (bool, error) {
	d := device.(*fakePhysicalDevice)
	d.presentQueries = append(d.presentQueries, queueFamily)
	if d.presentErr != nil {
		return false, d.presentErr
	}
	return d.presentFamilies[queueFamily], nil
}

func (s *fakeSurface) Capabilities(device PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	device.(*fakePhysicalDevice).swapchainQueried = true
	return &khr_surface.SurfaceCapabilities{}, nil
}

func (s *fakeSurface) Formats(device PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	return device.(*fakePhysicalDevice).formats, nil
}

func (s *fakeSurface) PresentModes(device PhysicalDevice) ([]khr_surface.PresentMode, error) {
	return device.(*fakePhysicalDevice).presentModes, nil
}

func (s *fakeSurface) Destroy() {
	s.rec.add("destroy surface")
}

type fakeDevice struct {
	rec *recorder
}

func (d *fakeDevice) Queue(queueFamily, index int) Queue {
	return Queue{Family: queueFamily}
}

func (d *fakeDevice) Destroy() {
	d.rec.add("destroy logical device")
}

type fakePlatform struct {
	initErr   error
	windowErr error
	window    *fakeWindow
	rec       *recorder
}

func (p *fakePlatform) Init() error {
	if p.initErr != nil {
		return p.initErr
	}
	p.rec.add("init platform")
	return nil
}

func (p *fakePlatform) CreateWindow(width, height int, title string) (Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.rec.add("create window")
	p.window.width, p.window.height, p.window.title = width, height, title
	return p.window, nil
}

func (p *fakePlatform) Quit() {
	p.rec.add("quit platform")
}

type fakeWindow struct {
	width, height int
	title         string
	extensions    []string
	surfaceErr    error
	// closeAfter is the number of polls after which a close is requested.
	closeAfter int
	polls      int
	shown      bool
	rec        *recorder
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(instance Instance) (Surface, error) {
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	w.rec.add("create surface")
	return &fakeSurface{rec: w.rec}, nil
}

func (w *fakeWindow) Show() {
	w.shown = true
}

func (w *fakeWindow) ShouldClose() bool {
	return w.polls >= w.closeAfter
}

func (w *fakeWindow) PollEvents() {
	w.polls++
}

func (w *fakeWindow) Destroy() {
	w.rec.add("destroy window")
}

var errDriver = errors.New("driver failure")
