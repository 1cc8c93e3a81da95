package bootstrap

import "github.com/cockroachdb/errors"

// Error kinds returned by the setup steps. Test with errors.Is.
var (
	ErrUnsupportedLayer             = errors.New("unsupported layer")
	ErrUnsupportedExtension         = errors.New("unsupported extension")
	ErrInstanceCreationFailed       = errors.New("instance creation failed")
	ErrDebugMessengerCreationFailed = errors.New("debug messenger creation failed")
	ErrSurfaceCreationFailed        = errors.New("surface creation failed")
	ErrNoSuitableDeviceFound        = errors.New("no suitable device found")
	ErrLogicalDeviceCreationFailed  = errors.New("logical device creation failed")
	ErrWindowCreationFailed         = errors.New("window creation failed")
)

func markf(kind error, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return errors.Mark(errors.Newf(format, args...), kind)
	}
	return errors.Mark(errors.Wrapf(cause, format, args...), kind)
}
