package sdlview

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/canvas"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Window shows frames composed in Go through one streaming texture.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	texture *sdl.Texture
	width   int32
	height  int32
}

var window *Window

func GetWindow() *Window {
	return window
}

func initWindow(title string) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 1024, 768
	}
	return initWindowWithSize(title, displayMode.W, displayMode.H)
}

func initWindowWithSize(title string, width, height int32) (*Window, error) {
	x, y := int32(0), int32(0)
	flags := uint32(sdl.WINDOW_SHOWN)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envInt32("WINDOW_WIDTH", 1024)
		height = envInt32("WINDOW_HEIGHT", 768)
		flags |= sdl.WINDOW_BORDERLESS
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		renderer.Destroy()
		win.Destroy()
		return nil, fmt.Errorf("create frame texture: %w", err)
	}

	return &Window{
		Window:   win,
		Renderer: renderer,
		Title:    title,
		texture:  texture,
		width:    width,
		height:   height,
	}, nil
}

func envInt32(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid "+name+"; using default", "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) Size() image.Point {
	return image.Pt(int(window.width), int(window.height))
}

// Present uploads frame into the streaming texture and flips. frame is
// expected to match the window size; anything outside is cropped.
func (window *Window) Present(frame *canvas.Surface) error {
	pixels, pitch, err := window.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock frame texture: %w", err)
	}

	src := frame.RGBA()
	b := src.Bounds()
	b = b.Intersect(image.Rectangle{Min: b.Min, Max: b.Min.Add(window.Size())})
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pixels[y*pitch:y*pitch+rowBytes], src.Pix[off:off+rowBytes])
	}
	window.texture.Unlock()

	window.Renderer.SetDrawColor(0, 0, 0, 255)
	window.Renderer.Clear()
	if err := window.Renderer.Copy(window.texture, nil, nil); err != nil {
		return fmt.Errorf("copy frame: %w", err)
	}
	window.Renderer.Present()
	return nil
}

func (window *Window) closeWindow() {
	if window.texture != nil {
		window.texture.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// openDisplay brings up SDL, the window and the attached controllers.
func openDisplay(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("initialize SDL: %w", err)
	}

	w, err := initWindow(title)
	if err != nil {
		sdl.Quit()
		return err
	}
	window = w

	OpenControllers()
	return nil
}

func closeDisplay() {
	CloseAllControllers()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	sdl.Quit()
	internal.CloseLogger()
}
