// Package ebitenview shows a menu in an ebiten window. It is meant for
// desktop development where SDL and a game pad are not around.
package ebitenview

import (
	"image"
	"time"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyButtons maps keyboard keys to the pad buttons they stand in for.
var KeyButtons = map[ebiten.Key]constants.VirtualButton{
	ebiten.KeyArrowUp:    constants.VirtualButtonUp,
	ebiten.KeyArrowDown:  constants.VirtualButtonDown,
	ebiten.KeyArrowLeft:  constants.VirtualButtonLeft,
	ebiten.KeyArrowRight: constants.VirtualButtonRight,
	ebiten.KeyEnter:      constants.VirtualButtonA,
	ebiten.KeySpace:      constants.VirtualButtonA,
	ebiten.KeyEscape:     constants.VirtualButtonB,
	ebiten.KeyBackspace:  constants.VirtualButtonB,
	ebiten.KeyX:          constants.VirtualButtonX,
	ebiten.KeyY:          constants.VirtualButtonY,
	ebiten.KeyTab:        constants.VirtualButtonMenu,
}

// View implements ebiten.Game around a gridmenu.Session.
type View struct {
	session *gridmenu.Session
	size    image.Point
	screen  *ebiten.Image
	now     func() time.Time
}

func NewView(session *gridmenu.Session, size image.Point) *View {
	return &View{
		session: session,
		size:    size,
		now:     time.Now,
	}
}

func (v *View) Update() error {
	now := v.now()
	for key, button := range KeyButtons {
		switch {
		case inpututil.IsKeyJustPressed(key):
			v.session.Press(now, button)
		case inpututil.IsKeyJustReleased(key):
			v.session.Release(button)
		}
	}
	v.session.Tick(now)

	if v.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	if v.screen == nil {
		v.screen = ebiten.NewImage(v.size.X, v.size.Y)
	}
	if frame, changed := v.session.Frame(); changed {
		v.screen.WritePixels(frame.RGBA().Pix)
	}
	screen.DrawImage(v.screen, nil)
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size.X, v.size.Y
}

// Run shows menu in a window of the given size until an item is chosen
// or the user backs out.
func Run(menu *gridmenu.Menu, size image.Point, title string, options gridmenu.RunOptions) (*gridmenu.MenuResult, error) {
	session := gridmenu.NewSession(menu, size, options)
	defer session.Close()

	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(NewView(session, size)); err != nil {
		gridmenu.GetLogger().Error("ebiten stopped", "error", err)
		return nil, err
	}
	if !session.Done() {
		session.Cancel()
	}
	return session.Result()
}
