package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// evdev key values
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

var DefaultEvdevMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:         constants.VirtualButtonUp,
	evdev.KEY_DOWN:       constants.VirtualButtonDown,
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.KEY_ENTER:      constants.VirtualButtonA,
	evdev.KEY_ESC:        constants.VirtualButtonB,
	evdev.BTN_SOUTH:      constants.VirtualButtonB,
	evdev.BTN_EAST:       constants.VirtualButtonA,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
	evdev.BTN_MODE:       constants.VirtualButtonMenu,
}

// EvdevSource reads a Linux input device and emits virtual button events.
// It is for handhelds where SDL has no access to the pad.
type EvdevSource struct {
	Path    string
	Mapping map[evdev.EvCode]constants.VirtualButton

	device  *evdev.InputDevice
	running *atomic.Bool
	dropped *atomic.Int64
}

func NewEvdevSource(path string) *EvdevSource {
	return &EvdevSource{
		Path:    path,
		Mapping: DefaultEvdevMap,
		running: atomic.NewBool(false),
		dropped: atomic.NewInt64(0),
	}
}

// Run reads events until ctx is done or the device fails, sending mapped
// events on out. Events are dropped rather than blocking the reader when
// out is full. Run closes out when it returns.
func (s *EvdevSource) Run(ctx context.Context, out chan<- Event) error {
	defer close(out)

	dev, err := evdev.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", s.Path, err)
	}
	s.device = dev
	s.running.Store(true)
	defer s.running.Store(false)

	if name, err := dev.Name(); err == nil {
		GetInternalLogger().Debug("Reading input device", "path", s.Path, "name", name)
	}

	// ReadOne blocks, so closing the device is what unblocks it on cancel
	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return ctx.Err()
			}
			return fmt.Errorf("read input device %s: %w", s.Path, err)
		}

		event, ok := s.translate(ev.Type, ev.Code, ev.Value)
		if !ok {
			continue
		}

		select {
		case out <- event:
		default:
			s.dropped.Inc()
		}
	}
}

func (s *EvdevSource) translate(typ evdev.EvType, code evdev.EvCode, value int32) (Event, bool) {
	if typ != evdev.EV_KEY || value == keyRepeated {
		return Event{}, false
	}
	button, ok := s.Mapping[code]
	if !ok {
		return Event{}, false
	}
	return Event{
		Button:  button,
		Pressed: value == keyPressed,
		Source:  SourceEvdev,
		RawCode: int(code),
	}, true
}

func (s *EvdevSource) Running() bool {
	return s.running.Load()
}

// Dropped counts events discarded because the consumer fell behind.
func (s *EvdevSource) Dropped() int64 {
	return s.dropped.Load()
}
