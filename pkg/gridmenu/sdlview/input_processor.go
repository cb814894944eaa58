package sdlview

import (
	"fmt"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

// OpenControllers opens every attached pad so SDL delivers its events.
func OpenControllers() {
	numJoysticks := sdl.NumJoysticks()
	internal.GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			if controller := sdl.GameControllerOpen(i); controller != nil {
				internal.GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
				gameControllers = append(gameControllers, controller)
			} else {
				internal.GetInternalLogger().Error("Failed to open game controller", "index", i)
			}
			continue
		}
		if joystick := sdl.JoystickOpen(i); joystick != nil {
			internal.GetInternalLogger().Debug("Opened raw joystick", "index", i, "name", joystick.Name())
			rawJoysticks = append(rawJoysticks, joystick)
		}
	}
}

func CloseAllControllers() {
	for _, controller := range gameControllers {
		if controller != nil {
			controller.Close()
		}
	}
	for _, joystick := range rawJoysticks {
		if joystick != nil {
			joystick.Close()
		}
	}
	gameControllers, rawJoysticks = nil, nil
}

// Processor turns SDL events into virtual button events. Hats and axes
// are stateful, so one physical change can yield a release followed by a
// press; the second is queued for the next call.
type Processor struct {
	mapping    *InputMapping
	axisStates map[uint8]int8
	hatStates  map[uint8]uint8
	queue      []*internal.Event
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = GetInputMapping()
	}
	return &Processor{
		mapping:    mapping,
		axisStates: make(map[uint8]int8),
		hatStates:  make(map[uint8]uint8),
	}
}

// Pending returns a queued event left over from an earlier SDL event.
func (ip *Processor) Pending() *internal.Event {
	if len(ip.queue) == 0 {
		return nil
	}
	evt := ip.queue[0]
	ip.queue = ip.queue[1:]
	return evt
}

func (ip *Processor) ProcessSDLEvent(event sdl.Event) *internal.Event {
	logger := internal.GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]; ok {
			return ip.emit(button, e.Type == sdl.KEYDOWN, internal.SourceKeyboard, int(e.Keysym.Sym))
		}
		logger.Debug("Keyboard input not mapped", "key_code", fmt.Sprintf("%s (%d)", sdl.GetKeyName(e.Keysym.Sym), e.Keysym.Sym))

	case *sdl.ControllerButtonEvent:
		if button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; ok {
			return ip.emit(button, e.Type == sdl.CONTROLLERBUTTONDOWN, internal.SourceController, int(e.Button))
		}
		logger.Debug("Controller button not mapped", "button_code", e.Button)

	case *sdl.JoyButtonEvent:
		if button, ok := ip.mapping.JoystickButtonMap[e.Button]; ok {
			return ip.emit(button, e.Type == sdl.JOYBUTTONDOWN, internal.SourceJoystick, int(e.Button))
		}
		logger.Debug("Joy button not mapped", "button_code", e.Button)

	case *sdl.JoyHatEvent:
		return ip.hat(e.Hat, e.Value)

	case *sdl.JoyAxisEvent:
		return ip.axis(e.Axis, e.Value, internal.SourceJoystick)

	case *sdl.ControllerAxisEvent:
		return ip.axis(e.Axis, e.Value, internal.SourceController)
	}
	return nil
}

func (ip *Processor) emit(button constants.VirtualButton, pressed bool, source internal.Source, raw int) *internal.Event {
	if pressed {
		internal.GetInternalLogger().Debug("Input mapped",
			"source", source.String(),
			"raw_code", raw,
			"virtual_button", button.GetName())
	}
	return &internal.Event{Button: button, Pressed: pressed, Source: source, RawCode: raw}
}

func (ip *Processor) hat(hat, value uint8) *internal.Event {
	previous := ip.hatStates[hat]
	ip.hatStates[hat] = value
	if previous == value {
		return nil
	}

	var release, press *internal.Event
	if previous != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[previous]; ok {
			release = ip.emit(button, false, internal.SourceHatSwitch, int(previous))
		}
	}
	if value != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[value]; ok {
			press = ip.emit(button, true, internal.SourceHatSwitch, int(value))
		}
	}

	if release != nil {
		if press != nil {
			ip.queue = append(ip.queue, press)
		}
		return release
	}
	return press
}

func (ip *Processor) axis(axis uint8, value int16, source internal.Source) *internal.Event {
	cfg, ok := ip.mapping.JoystickAxisMap[axis]
	if !ok {
		return nil
	}

	var state int8
	if value > cfg.Threshold {
		state = 1
	} else if value < -cfg.Threshold {
		state = -1
	}

	previous := ip.axisStates[axis]
	if state == previous {
		return nil
	}
	ip.axisStates[axis] = state

	buttonFor := func(s int8) constants.VirtualButton {
		if s > 0 {
			return cfg.PositiveButton
		}
		return cfg.NegativeButton
	}

	var release, press *internal.Event
	if previous != 0 {
		release = ip.emit(buttonFor(previous), false, source, int(axis))
	}
	if state != 0 {
		press = ip.emit(buttonFor(state), true, source, int(axis))
	}

	if release != nil {
		if press != nil {
			ip.queue = append(ip.queue, press)
		}
		return release
	}
	return press
}
