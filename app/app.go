package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/pose-preview-go/config"
	"github.com/soocke/pose-preview-go/debug"
	"github.com/soocke/pose-preview-go/ui/presenter"
	"github.com/soocke/pose-preview-go/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

var frameSources = []string{"camera", "screen"}

type app struct {
	container *AppContainer
	width     int
	height    int
	afterID   string
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{width: width, height: height}
	a.container = BuildContainer(cfg, logger, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	c := a.container
	theme.InitStyles()

	c.RootView.Build(frameSources, c.CapturePresenter.Toggle, c.Selection.OpenOrFocus, a.exitHandler, c.SetSource)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.StatusPresenter, c.PosePresenter, a.scheduleUpdate)

	if c.Config.Debug {
		debug.StartGoroutineLogger(5*time.Second, c.Logger)
		debug.StartMemLogger(5*time.Second, c.Logger)
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.container.Close()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
