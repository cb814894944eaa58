package gridmenu

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
)

func newTestSession(t *testing.T, spec menuSpec, opts RunOptions) *Session {
	t.Helper()
	m, _ := newTestMenu(t, spec)
	s := NewSession(m, image.Pt(300, 100), opts)
	t.Cleanup(s.Close)
	return s
}

func tap(s *Session, at time.Time, button constants.VirtualButton) {
	s.Press(at, button)
	s.Release(button)
}

func TestSessionSelect(t *testing.T) {
	s := newTestSession(t, stripSpec(), DefaultRunOptions())
	start := time.Unix(0, 0)

	tap(s, start, constants.VirtualButtonRight)
	tap(s, start.Add(time.Second), constants.VirtualButtonRight)
	if s.Done() {
		t.Fatal("session finished on navigation")
	}

	tap(s, start.Add(2*time.Second), constants.VirtualButtonA)
	if !s.Done() {
		t.Fatal("A did not finish the session")
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if res.Selected != 2 || res.Action != MenuActionSelected || res.Item == nil || res.Item.Index() != 2 {
		t.Errorf("result = %+v, want item 2 selected", res)
	}

	// input after the end is ignored
	tap(s, start.Add(3*time.Second), constants.VirtualButtonLeft)
	if s.Menu().Selection() != 2 {
		t.Errorf("selection moved after the session ended")
	}
}

func TestSessionCancel(t *testing.T) {
	tests := []struct {
		name     string
		opts     RunOptions
		button   constants.VirtualButton
		wantDone bool
		wantErr  error
		wantAct  MenuAction
	}{
		{
			name:     "back cancels",
			opts:     DefaultRunOptions(),
			button:   constants.VirtualButtonB,
			wantDone: true,
			wantErr:  ErrCancelled,
		},
		{
			name:   "back disabled",
			opts:   RunOptions{DisableBackButton: true},
			button: constants.VirtualButtonB,
		},
		{
			name:     "action button",
			opts:     RunOptions{ActionButton: constants.VirtualButtonX},
			button:   constants.VirtualButtonX,
			wantDone: true,
			wantAct:  MenuActionTriggered,
		},
		{
			name:   "unassigned button",
			opts:   DefaultRunOptions(),
			button: constants.VirtualButtonY,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, stripSpec(), tt.opts)
			tap(s, time.Unix(0, 0), tt.button)

			if s.Done() != tt.wantDone {
				t.Fatalf("Done() = %v, want %v", s.Done(), tt.wantDone)
			}
			if !tt.wantDone {
				return
			}
			res, err := s.Result()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Result() error = %v, want %v", err, tt.wantErr)
			}
			if res.Action != tt.wantAct {
				t.Errorf("action = %d, want %d", res.Action, tt.wantAct)
			}
		})
	}
}

func TestSessionIgnoresSelectWithoutEnabledItems(t *testing.T) {
	spec := stripSpec()
	spec.disabled = []int{0, 1, 2, 3, 4}
	s := newTestSession(t, spec, DefaultRunOptions())

	tap(s, time.Unix(0, 0), constants.VirtualButtonA)
	if s.Done() {
		t.Error("A finished the session on a disabled item")
	}

	empty := stripSpec()
	empty.items = 0
	s = newTestSession(t, empty, DefaultRunOptions())
	tap(s, time.Unix(0, 0), constants.VirtualButtonA)
	if s.Done() {
		t.Error("A finished the session on an empty menu")
	}
}

func TestSessionHeldDirectionRepeats(t *testing.T) {
	s := newTestSession(t, stripSpec(), DefaultRunOptions())
	nav := s.Navigator()
	start := time.Unix(0, 0)

	s.Press(start, constants.VirtualButtonRight)
	s.Tick(start.Add(nav.RepeatDelay / 2))
	if got := s.Menu().Selection(); got != 1 {
		t.Fatalf("selection = %d before the repeat delay, want 1", got)
	}

	s.Tick(start.Add(nav.RepeatDelay + nav.RepeatInterval))
	s.Tick(start.Add(nav.RepeatDelay + 2*nav.RepeatInterval))
	if got := s.Menu().Selection(); got != 3 {
		t.Fatalf("selection = %d after two repeats, want 3", got)
	}

	s.Release(constants.VirtualButtonRight)
	s.Tick(start.Add(time.Minute))
	if got := s.Menu().Selection(); got != 3 {
		t.Errorf("selection = %d after release, want 3", got)
	}
}

func TestSessionFrame(t *testing.T) {
	s := newTestSession(t, stripSpec(), DefaultRunOptions())

	frame, changed := s.Frame()
	if !changed {
		t.Fatal("first frame not reported as changed")
	}
	if _, again := s.Frame(); again {
		t.Error("frame reported changed without input")
	}

	// 250x60 menu centred in 300x100
	origin := MenuOrigin(image.Pt(300, 100), image.Pt(250, 60))
	if origin != image.Pt(25, 20) {
		t.Fatalf("MenuOrigin = %v, want (25,20)", origin)
	}

	if got := frame.At(0, 0); got.A != 255 {
		t.Errorf("page background missing at the corner: %v", got)
	}
	want := s.Menu().dst.At(53, 40)
	if got := frame.At(origin.X+53, origin.Y+40); got != want {
		t.Errorf("frame pixel = %v, want menu pixel %v", got, want)
	}

	tap(s, time.Unix(0, 0), constants.VirtualButtonRight)
	if _, changed := s.Frame(); !changed {
		t.Error("frame not changed after a move")
	}
}

func TestSessionFrameWithoutPage(t *testing.T) {
	s := newTestSession(t, stripSpec(), RunOptions{})
	frame, _ := s.Frame()
	if got := frame.At(0, 0); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("corner = %v, want opaque black", got)
	}
}

func TestSplitFooterItems(t *testing.T) {
	items := []FooterHelpItem{{ButtonName: "A"}, {ButtonName: "B"}, {ButtonName: "X"}, {ButtonName: "Y"}, {ButtonName: "Menu"}}
	tests := []struct {
		n                   int
		wantLeft, wantRight int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 2},
	}
	for _, tt := range tests {
		left, right := splitFooterItems(items[:tt.n])
		if len(left) != tt.wantLeft || len(right) != tt.wantRight {
			t.Errorf("split(%d) = %d/%d, want %d/%d", tt.n, len(left), len(right), tt.wantLeft, tt.wantRight)
		}
	}
}

func TestSessionFooter(t *testing.T) {
	opts := DefaultRunOptions()
	opts.FooterHelpItems = []FooterHelpItem{{ButtonName: "A", HelpText: "Select"}}
	s := newTestSession(t, stripSpec(), opts)

	// circle of 22 + gap 8 + "Select" 60 + edges 20
	if got := footerGroupWidth(s.menu.text, opts.FooterHelpItems); got != 110 {
		t.Fatalf("footerGroupWidth = %d, want 110", got)
	}

	frame, _ := s.Frame()
	// one hint is centred: pill (95,60)-(205,90)
	if got := frame.At(150, 75); got != internal.DefaultTheme.SelectedColor {
		t.Errorf("outer pill = %v, want %v", got, internal.DefaultTheme.SelectedColor)
	}
	if got := frame.At(116, 75); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("button circle = %v, want white", got)
	}
	if got := frame.At(50, 75); got == internal.DefaultTheme.SelectedColor {
		t.Error("pill drawn outside its group")
	}
}
