package bootstrap

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

// LogicalDevice owns the opened device. Its queues are views into it and
// may alias when one family serves both roles.
type LogicalDevice struct {
	Device        Device
	GraphicsQueue Queue
	PresentQueue  Queue
}

// QueueCreateInfos returns one single-queue record per distinct family.
func QueueCreateInfos(indices QueueFamilyIndices) []core1_0.DeviceQueueCreateInfo {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range indices.UniqueFamilies() {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}
	return queueFamilyOptions
}

func CreateLogicalDevice(selected SelectedDevice, cfg Config, log logrus.FieldLogger) (LogicalDevice, error) {
	indices := selected.Indices
	if !indices.IsComplete() {
		return LogicalDevice{}, markf(ErrLogicalDeviceCreationFailed, nil, "queue families are not resolved")
	}

	var extensionNames []string
	extensionNames = append(extensionNames, cfg.DeviceExtensions...)

	extensions, err := selected.Device.Extensions()
	if err != nil {
		return LogicalDevice{}, markf(ErrLogicalDeviceCreationFailed, err, "enumerate device extensions")
	}
	if _, ok := stringSet(extensions)[khr_portability_subset.ExtensionName]; ok {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	// Device layers are not passed: the loader applies instance layers to
	// every device.
	device, err := selected.Device.CreateDevice(core1_0.DeviceCreateInfo{
		QueueCreateInfos:      QueueCreateInfos(indices),
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return LogicalDevice{}, markf(ErrLogicalDeviceCreationFailed, err, "create logical device")
	}

	log.WithFields(logrus.Fields{
		"graphicsFamily": *indices.GraphicsFamily,
		"presentFamily":  *indices.PresentFamily,
		"extensions":     extensionNames,
	}).Info("created logical device")

	return LogicalDevice{
		Device:        device,
		GraphicsQueue: device.Queue(*indices.GraphicsFamily, 0),
		PresentQueue:  device.Queue(*indices.PresentFamily, 0),
	}, nil
}
