package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// RequiredExtensions is the instance extension list for the given window
// system extensions: those, plus debug utils when diagnostics are on.
func RequiredExtensions(cfg Config, windowExtensions []string) []string {
	extensions := append([]string(nil), windowExtensions...)
	if cfg.EnableDiagnostics {
		extensions = append(extensions, ext_debug_utils.ExtensionName)
	}
	return extensions
}

// CreateInstance validates the requested layers and extensions against the
// host and creates the instance. Nothing is created if validation fails.
func CreateInstance(loader Loader, cfg Config, windowExtensions []string, log logrus.FieldLogger) (Instance, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         cfg.EngineName,
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_0,
	}

	// Add layers
	if requested := cfg.Layers(); len(requested) > 0 {
		layers, err := loader.AvailableLayers()
		if err != nil {
			return nil, markf(ErrInstanceCreationFailed, err, "enumerate instance layers")
		}
		log.WithField("layers", layers).Debug("available instance layers")

		availableLayers := stringSet(layers)
		for _, layer := range requested {
			if _, ok := availableLayers[layer]; !ok {
				return nil, errors.WithHint(
					markf(ErrUnsupportedLayer, nil, "validation layer %s not available", layer),
					"install the LunarG Vulkan SDK",
				)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}
	}

	// Add extensions
	extensions, err := loader.AvailableExtensions()
	if err != nil {
		return nil, markf(ErrInstanceCreationFailed, err, "enumerate instance extensions")
	}

	availableExtensions := stringSet(extensions)
	for _, ext := range RequiredExtensions(cfg, windowExtensions) {
		if _, ok := availableExtensions[ext]; !ok {
			return nil, markf(ErrUnsupportedExtension, nil, "instance extension %s not available", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if _, ok := availableExtensions[khr_portability_enumeration.ExtensionName]; ok {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if cfg.EnableDiagnostics {
		instanceOptions.Next = DebugMessengerOptions(log)
	}

	instance, err := loader.CreateInstance(instanceOptions)
	if err != nil {
		return nil, markf(ErrInstanceCreationFailed, err, "create instance")
	}

	log.WithFields(logrus.Fields{
		"layers":     instanceOptions.EnabledLayerNames,
		"extensions": instanceOptions.EnabledExtensionNames,
	}).Info("created vulkan instance")
	return instance, nil
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
