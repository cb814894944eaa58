package sdlview

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

// InputMapping translates physical SDL inputs to virtual buttons.
type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickAxisMap     map[uint8]JoystickAxisMapping
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickHatMap      map[uint8]constants.VirtualButton
}

type axisMappingJSON struct {
	PositiveButton int   `json:"positive_button"`
	NegativeButton int   `json:"negative_button"`
	Threshold      int16 `json:"threshold"`
}

// mappingJSON is the file format: SDL codes to VirtualButton values.
type mappingJSON struct {
	KeyboardMap         map[int]int             `json:"keyboard_map"`
	ControllerButtonMap map[int]int             `json:"controller_button_map"`
	JoystickAxisMap     map[int]axisMappingJSON `json:"joystick_axis_map"`
	JoystickButtonMap   map[int]int             `json:"joystick_button_map"`
	JoystickHatMap      map[int]int             `json:"joystick_hat_map"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:     constants.VirtualButtonUp,
			sdl.K_DOWN:   constants.VirtualButtonDown,
			sdl.K_LEFT:   constants.VirtualButtonLeft,
			sdl.K_RIGHT:  constants.VirtualButtonRight,
			sdl.K_a:      constants.VirtualButtonA,
			sdl.K_b:      constants.VirtualButtonB,
			sdl.K_RETURN: constants.VirtualButtonA,
			sdl.K_ESCAPE: constants.VirtualButtonB,
			sdl.K_x:      constants.VirtualButtonX,
			sdl.K_y:      constants.VirtualButtonY,
			sdl.K_SPACE:  constants.VirtualButtonSelect,
			sdl.K_h:      constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:          constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:          constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
		},
		JoystickAxisMap:   map[uint8]JoystickAxisMapping{},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping prefers mapping bytes set by the application, then the
// file named by INPUT_MAPPING_PATH, then the default mapping.
func GetInputMapping() *InputMapping {
	logger := internal.GetInternalLogger()

	if data := internal.InputMappingBytes(); len(data) > 0 {
		mapping, err := LoadInputMappingFromBytes(data)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	if mappingPath := os.Getenv(internal.MappingPathEnvVar); mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var raw mappingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         convertButtons[sdl.Keycode](raw.KeyboardMap),
		ControllerButtonMap: convertButtons[sdl.GameControllerButton](raw.ControllerButtonMap),
		JoystickAxisMap:     make(map[uint8]JoystickAxisMapping, len(raw.JoystickAxisMap)),
		JoystickButtonMap:   convertButtons[uint8](raw.JoystickButtonMap),
		JoystickHatMap:      convertButtons[uint8](raw.JoystickHatMap),
	}
	for axis, m := range raw.JoystickAxisMap {
		mapping.JoystickAxisMap[uint8(axis)] = JoystickAxisMapping{
			PositiveButton: constants.VirtualButton(m.PositiveButton),
			NegativeButton: constants.VirtualButton(m.NegativeButton),
			Threshold:      m.Threshold,
		}
	}
	return mapping, nil
}

func convertButtons[K ~int32 | ~uint32 | ~uint8 | ~int](raw map[int]int) map[K]constants.VirtualButton {
	out := make(map[K]constants.VirtualButton, len(raw))
	for code, button := range raw {
		out[K(code)] = constants.VirtualButton(button)
	}
	return out
}

func exportButtons[K ~int32 | ~uint32 | ~uint8 | ~int](m map[K]constants.VirtualButton) map[int]int {
	out := make(map[int]int, len(m))
	for code, button := range m {
		out[int(code)] = int(button)
	}
	return out
}

func (im *InputMapping) ToJSON() ([]byte, error) {
	raw := mappingJSON{
		KeyboardMap:         exportButtons(im.KeyboardMap),
		ControllerButtonMap: exportButtons(im.ControllerButtonMap),
		JoystickAxisMap:     make(map[int]axisMappingJSON, len(im.JoystickAxisMap)),
		JoystickButtonMap:   exportButtons(im.JoystickButtonMap),
		JoystickHatMap:      exportButtons(im.JoystickHatMap),
	}
	for axis, m := range im.JoystickAxisMap {
		raw.JoystickAxisMap[int(axis)] = axisMappingJSON{
			PositiveButton: int(m.PositiveButton),
			NegativeButton: int(m.NegativeButton),
			Threshold:      m.Threshold,
		}
	}
	return json.MarshalIndent(raw, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
