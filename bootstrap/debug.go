package bootstrap

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

// DebugMessengerOptions captures warnings and errors of every message type
// and forwards them to log.
func DebugMessengerOptions(log logrus.FieldLogger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    DebugCallback(log),
	}
}

// DebugCallback returns a messenger callback that logs each message. It
// always returns false so the call that triggered the message goes ahead.
func DebugCallback(log logrus.FieldLogger) func(ext_debug_utils.DebugUtilsMessageTypeFlags, ext_debug_utils.DebugUtilsMessageSeverityFlags, *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	return func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
		entry := log.WithFields(logrus.Fields{
			"severity": severity,
			"type":     msgType,
		})

		if severity&ext_debug_utils.SeverityError != 0 {
			entry.Error(data.Message)
		} else {
			entry.Warn(data.Message)
		}
		return false
	}
}

// SetupDebugMessenger registers the diagnostics bridge on instance. It
// returns a nil Messenger when diagnostics are disabled.
func SetupDebugMessenger(instance Instance, cfg Config, log logrus.FieldLogger) (Messenger, error) {
	if !cfg.EnableDiagnostics {
		return nil, nil
	}

	messenger, err := instance.CreateDebugMessenger(DebugMessengerOptions(log))
	if err != nil {
		return nil, markf(ErrDebugMessengerCreationFailed, err, "create debug messenger")
	}
	return messenger, nil
}
