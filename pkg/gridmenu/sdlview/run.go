// Package sdlview shows a menu in an SDL window and reads the pad through
// SDL events, and optionally a Linux input device.
package sdlview

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type Options struct {
	WindowTitle          string
	PrimaryThemeColorHex uint32
	IsCannoli            bool
	IsNextUI             bool
	InputMapping         []byte
	LogFilename          string
}

// Init sets up logging, the theme, SDL and the window.
// Must be called before Run.
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
	if len(options.InputMapping) > 0 {
		internal.SetInputMappingBytes(options.InputMapping)
	}

	gridmenu.ApplyTheme(options.IsNextUI, options.IsCannoli)

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.SelectedColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if err := openDisplay(options.WindowTitle); err != nil {
		internal.GetLogger().Error("Failed to initialize display", "error", err)
		return err
	}
	return nil
}

// Close tidies up SDL. Must be called after all UI functions.
func Close() {
	closeDisplay()
}

// Run shows menu in the SDL window until an item is chosen or the user
// backs out, in which case the error is gridmenu.ErrCancelled.
func Run(menu *gridmenu.Menu, options gridmenu.RunOptions) (*gridmenu.MenuResult, error) {
	window := GetWindow()
	if window == nil {
		return nil, errors.New("sdlview: Init must be called before Run")
	}

	processor := NewInputProcessor(nil)
	session := gridmenu.NewSession(menu, window.Size(), options)
	defer session.Close()

	var evdevEvents chan internal.Event
	if options.EvdevPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		evdevEvents = make(chan internal.Event, 16)
		source := internal.NewEvdevSource(options.EvdevPath)
		go func() {
			if err := source.Run(ctx, evdevEvents); err != nil && !errors.Is(err, context.Canceled) {
				internal.GetInternalLogger().Error("Input device stopped", "path", options.EvdevPath, "error", err)
			}
		}()
	}

	dispatch := func(ev *internal.Event) {
		if ev.Pressed {
			session.Press(time.Now(), ev.Button)
		} else {
			session.Release(ev.Button)
		}
	}

	for !session.Done() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				session.Cancel()
			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				if ev := processor.ProcessSDLEvent(event); ev != nil {
					dispatch(ev)
				}
				for ev := processor.Pending(); ev != nil; ev = processor.Pending() {
					dispatch(ev)
				}
			}
		}

	drain:
		for evdevEvents != nil {
			select {
			case ev, ok := <-evdevEvents:
				if !ok {
					evdevEvents = nil
					break drain
				}
				dispatch(&ev)
			default:
				break drain
			}
		}

		session.Tick(time.Now())

		if frame, changed := session.Frame(); changed {
			if err := window.Present(frame); err != nil {
				internal.GetInternalLogger().Error("Failed to present frame", "error", err)
			}
		}
		sdl.Delay(uint32(constants.FrameDelay.Milliseconds()))
	}

	return session.Result()
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}
