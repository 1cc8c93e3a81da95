package bootstrap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func TestDebugCallbackLogsWarning(t *testing.T) {
	log, hook := testLogger()
	callback := DebugCallback(log)

	abort := callback(ext_debug_utils.TypeValidation, ext_debug_utils.SeverityWarning, &ext_debug_utils.DebugUtilsMessengerCallbackData{
		Message: "vkCreateDevice: queue priority out of range",
	})
	if abort {
		t.Error("callback must not abort the triggering call")
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nothing was logged")
	}
	if entry.Message != "vkCreateDevice: queue priority out of range" {
		t.Errorf("logged %q", entry.Message)
	}
	if entry.Level != logrus.WarnLevel {
		t.Errorf("logged at %s, want warning", entry.Level)
	}
}

func TestDebugCallbackLogsError(t *testing.T) {
	log, hook := testLogger()

	abort := DebugCallback(log)(ext_debug_utils.TypeGeneral, ext_debug_utils.SeverityError, &ext_debug_utils.DebugUtilsMessengerCallbackData{
		Message: "device lost",
	})
	if abort {
		t.Error("callback must not abort the triggering call")
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.ErrorLevel {
		t.Errorf("expected an error entry, got %+v", entry)
	}
}

func TestDebugMessengerOptions(t *testing.T) {
	log, _ := testLogger()
	options := DebugMessengerOptions(log)

	if options.MessageSeverity != ext_debug_utils.SeverityError|ext_debug_utils.SeverityWarning {
		t.Errorf("got severities %v", options.MessageSeverity)
	}
	wantTypes := ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance
	if options.MessageType != wantTypes {
		t.Errorf("got types %v", options.MessageType)
	}
	if options.UserCallback == nil {
		t.Error("expected a callback")
	}
}

func TestSetupDebugMessenger(t *testing.T) {
	log, _ := testLogger()
	instance := &fakeInstance{}

	messenger, err := SetupDebugMessenger(instance, diagnosticsConfig(true), log)
	if err != nil {
		t.Fatal(err)
	}
	if messenger == nil || instance.messengerOptions == nil {
		t.Fatal("expected a messenger to be registered")
	}
}

func TestSetupDebugMessengerDisabled(t *testing.T) {
	log, _ := testLogger()
	instance := &fakeInstance{}

	messenger, err := SetupDebugMessenger(instance, diagnosticsConfig(false), log)
	if err != nil {
		t.Fatal(err)
	}
	if messenger != nil || instance.messengerOptions != nil {
		t.Error("no messenger should be registered when diagnostics are off")
	}
}

func TestSetupDebugMessengerFailure(t *testing.T) {
	log, _ := testLogger()
	instance := &fakeInstance{messengerErr: errDriver}

	_, err := SetupDebugMessenger(instance, diagnosticsConfig(true), log)
	if !errors.Is(err, ErrDebugMessengerCreationFailed) {
		t.Fatalf("expected ErrDebugMessengerCreationFailed, got %v", err)
	}
}
