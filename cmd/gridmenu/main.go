// Command gridmenu shows a menu described in a TOML, YAML or JSON file and
// prints the id of the chosen item. Backing out exits with status 2.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/definition"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/ebitenview"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/i18n"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/sdlview"
)

const exitCancelled = 2

func main() {
	menuPath := flag.String("menu", "", "path to a menu definition (.toml, .yaml, .json)")
	useEbiten := flag.Bool("ebiten", false, "show the menu in an ebiten window instead of SDL")
	lang := flag.String("lang", "", "language for labels with a message_id, e.g. es")
	messages := flag.String("messages", "", "comma separated go-i18n message files")
	platform := flag.String("platform", "", "theme preset: nextui or cannoli")
	evdevPath := flag.String("evdev", "", "also read pad input from this /dev/input device")
	width := flag.Int("width", 0, "ebiten window width, defaults to fit the menu")
	height := flag.Int("height", 0, "ebiten window height, defaults to fit the menu and footer")
	flag.Parse()

	if *menuPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: gridmenu -menu <file> [-ebiten] [-lang es -messages active.es.toml] [-platform nextui|cannoli] [-evdev /dev/input/eventN]")
		os.Exit(1)
	}

	logger := gridmenu.GetLogger()

	def, err := definition.Load(*menuPath)
	if err != nil {
		logger.Error("Unable to load menu", "error", err)
		os.Exit(1)
	}

	if *messages != "" {
		var langs []string
		if *lang != "" {
			langs = append(langs, *lang)
		}
		if err := i18n.InitI18N(strings.Split(*messages, ","), langs...); err != nil {
			logger.Error("Unable to load translations", "error", err)
			os.Exit(1)
		}
	}

	// leave room under the menu for the footer
	size := image.Pt(max(def.Surface.Width, 640), max(def.Surface.Height+80, 480))
	if *width > 0 {
		size.X = *width
	}
	if *height > 0 {
		size.Y = *height
	}

	options := gridmenu.DefaultRunOptions()
	options.EvdevPath = *evdevPath
	options.ActionButton = constants.VirtualButtonX
	options.FooterHelpItems = []gridmenu.FooterHelpItem{
		{ButtonName: "B", HelpText: i18n.GetStringOr("footer_back", "Back")},
		{ButtonName: "X", HelpText: i18n.GetStringOr("footer_action", "Action")},
		{ButtonName: "A", HelpText: i18n.GetStringOr("footer_select", "Select")},
	}

	isNextUI, isCannoli := *platform == "nextui", *platform == "cannoli"

	var result *gridmenu.MenuResult
	if *useEbiten {
		gridmenu.ApplyTheme(isNextUI, isCannoli)
		result, err = runMenu(def, func(menu *gridmenu.Menu) (*gridmenu.MenuResult, error) {
			return ebitenview.Run(menu, size, def.Title, options)
		})
	} else {
		if err := sdlview.Init(sdlview.Options{
			WindowTitle: def.Title,
			IsNextUI:    isNextUI,
			IsCannoli:   isCannoli,
			LogFilename: "gridmenu.log",
		}); err != nil {
			os.Exit(1)
		}
		result, err = runMenu(def, func(menu *gridmenu.Menu) (*gridmenu.MenuResult, error) {
			return sdlview.Run(menu, options)
		})
		sdlview.Close()
	}

	if errors.Is(err, gridmenu.ErrCancelled) {
		os.Exit(exitCancelled)
	}
	if err != nil {
		logger.Error("Menu failed", "error", err)
		os.Exit(1)
	}

	var id string
	if result.Item != nil {
		id = result.Item.ID
	}
	if id == "" {
		id = strconv.Itoa(result.Selected)
	}
	if result.Action == gridmenu.MenuActionTriggered {
		fmt.Printf("%s\taction\n", id)
		return
	}
	fmt.Println(id)
}

func runMenu(def *definition.Definition, run func(*gridmenu.Menu) (*gridmenu.MenuResult, error)) (*gridmenu.MenuResult, error) {
	dst := def.NewSurface()
	defer dst.Release()

	menu, err := def.Build(dst, definition.BuildOptions{Text: gridmenu.FontBook()})
	if err != nil {
		return nil, err
	}
	defer menu.Destroy()

	return run(menu)
}
