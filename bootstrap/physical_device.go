package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// SelectedDevice is the physical device chosen by PickPhysicalDevice along
// with what was learned about it while checking suitability.
type SelectedDevice struct {
	Device     PhysicalDevice
	Properties *DeviceProperties
	Indices    QueueFamilyIndices
}

// PickPhysicalDevice returns the first enumerated device that passes every
// suitability check. There is no ranking between suitable devices.
func PickPhysicalDevice(instance Instance, surface Surface, cfg Config, log logrus.FieldLogger) (SelectedDevice, error) {
	physicalDevices, err := instance.PhysicalDevices()
	if err != nil {
		return SelectedDevice{}, markf(ErrNoSuitableDeviceFound, err, "enumerate physical devices")
	}

	for deviceIdx, device := range physicalDevices {
		selected, reason, err := checkDeviceSuitability(device, surface, cfg)
		if err != nil {
			log.WithError(err).WithField("device", deviceIdx).Warn("skipping physical device")
			continue
		}
		if reason != "" {
			log.WithFields(logrus.Fields{
				"device": deviceIdx,
				"reason": reason,
			}).Debug("physical device not suitable")
			continue
		}

		log.WithFields(logrus.Fields{
			"device":            deviceIdx,
			"name":              selected.Properties.Name,
			"vendorID":          selected.Properties.VendorID,
			"deviceID":          selected.Properties.DeviceID,
			"pipelineCacheUUID": selected.Properties.PipelineCacheUUID.String(),
		}).Info("selected physical device")
		return selected, nil
	}

	return SelectedDevice{}, markf(ErrNoSuitableDeviceFound, nil, "none of %d physical devices is suitable", len(physicalDevices))
}

// checkDeviceSuitability returns a non-empty reason when device is
// unsuitable, and an error when device could not be queried.
func checkDeviceSuitability(device PhysicalDevice, surface Surface, cfg Config) (SelectedDevice, string, error) {
	properties, err := device.Properties()
	if err != nil {
		return SelectedDevice{}, "", errors.Wrap(err, "get physical device properties")
	}

	if cfg.rejectsDevice(properties.Name) {
		return SelectedDevice{}, "device " + properties.Name + " is rejected by name", nil
	}

	if properties.Type != core1_0.PhysicalDeviceTypeDiscreteGPU {
		return SelectedDevice{}, "not a discrete gpu", nil
	}

	if !device.Features().GeometryShader {
		return SelectedDevice{}, "geometry shaders not supported", nil
	}

	indices, err := FindQueueFamilies(device, surface)
	if err != nil {
		return SelectedDevice{}, "", err
	}
	if !indices.IsComplete() {
		return SelectedDevice{}, "missing graphics or presentation queue family", nil
	}

	missing, err := missingDeviceExtension(device, cfg.DeviceExtensions)
	if err != nil {
		return SelectedDevice{}, "", err
	}
	if missing != "" {
		return SelectedDevice{}, "missing device extension " + missing, nil
	}

	swapchainSupport, err := QuerySwapchainSupport(device, surface)
	if err != nil {
		return SelectedDevice{}, "", err
	}
	if !swapchainSupport.Adequate() {
		return SelectedDevice{}, "no surface formats or present modes", nil
	}

	return SelectedDevice{
		Device:     device,
		Properties: properties,
		Indices:    indices,
	}, "", nil
}

func missingDeviceExtension(device PhysicalDevice, required []string) (string, error) {
	extensions, err := device.Extensions()
	if err != nil {
		return "", errors.Wrap(err, "enumerate device extensions")
	}

	available := stringSet(extensions)
	for _, extension := range required {
		if _, ok := available[extension]; !ok {
			return extension, nil
		}
	}
	return "", nil
}
