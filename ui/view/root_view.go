package view

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/pose-preview-go/config"
	"github.com/soocke/pose-preview-go/domain/camera"
	"github.com/soocke/pose-preview-go/domain/overlay"
	"github.com/soocke/pose-preview-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	viewport *model.ViewportModel
	skeleton [][2]int

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	Preview     OverlayPreview

	// Widgets
	StateLabel   *LabelWidget
	SourceSelect *TComboboxWidget
	previewRow   int
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetConfigEditable(enabled bool)
	RenderOverlay(snap camera.FrameSnapshot, points []overlay.Point)
	SetSession(session, total time.Duration)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger, viewport *model.ViewportModel, skeleton [][2]int) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger, viewport: viewport, skeleton: skeleton}
}

// Build constructs the layout. sources lists the selectable frame sources.
// Handlers are invoked on user actions.
func (rv *RootView) Build(sources []string, onToggleCapture func(), onSelectionGrid func(), onExit func(), onSourceChanged func(name string)) {
	if rv == nil {
		return
	}
	// Row 0: session stats, state label, buttons frame
	rv.Session = NewSessionStats(nil, 0, 0)
	rv.StateLabel = Label(Txt("State: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	captureBtn := Button(Txt("Toggle Capture"), Command(onToggleCapture))
	Grid(captureBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	if len(sources) == 0 {
		sources = []string{"camera"}
	}
	rv.SourceSelect = TCombobox(Values(sources), Width(26))
	Grid(rv.SourceSelect, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.SourceSelect.Current(0)
	Bind(rv.SourceSelect, "<<ComboboxSelected>>", Command(func() {
		if rv.SourceSelect != nil {
			idxStr := rv.SourceSelect.Current(nil)
			idx, err := strconv.Atoi(idxStr)
			if err == nil && idx >= 0 && idx < len(sources) {
				onSourceChanged(sources[idx])
			} else {
				if rv.logger != nil {
					rv.logger.Error("source selection parse error", "error", err)
				}
			}
		}
	}))
	selectionBtn := Button(Txt("Capture Region"), Command(onSelectionGrid))
	Grid(selectionBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(1)
	rv.previewRow = endRow

	// Preview placement
	rv.Preview = NewOverlayPreview(rv.previewRow, rv.cfg, rv.viewport, rv.skeleton)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// RenderOverlay proxies to the underlying preview view.
func (rv *RootView) RenderOverlay(snap camera.FrameSnapshot, points []overlay.Point) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.RenderOverlay(snap, points)
	}
}

// SetSession updates both session and total capture durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// --- CapturePresenter view contract methods ---

// PreviewReset clears the preview canvas.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// ConfigEditable redirects to SetConfigEditable to satisfy CaptureView interface.
func (rv *RootView) ConfigEditable(b bool) { rv.SetConfigEditable(b) }
