package internal

import (
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

// MappingPathEnvVar names a JSON input mapping file read by presenters
// that translate physical inputs themselves.
const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

// InputMappingBytes returns the mapping set by the application, if any.
func InputMappingBytes() []byte {
	return inputMappingBytes
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
	SourceEvdev
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceController:
		return "controller"
	case SourceJoystick:
		return "joystick"
	case SourceHatSwitch:
		return "hat"
	case SourceEvdev:
		return "evdev"
	}
	return "unknown"
}

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}
