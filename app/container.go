package app

import (
	"errors"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/pose-preview-go/assets"
	"github.com/soocke/pose-preview-go/config"
	"github.com/soocke/pose-preview-go/domain/camera"
	"github.com/soocke/pose-preview-go/domain/overlay"
	"github.com/soocke/pose-preview-go/domain/pose"
	"github.com/soocke/pose-preview-go/ui/model"
	"github.com/soocke/pose-preview-go/ui/presenter"
	"github.com/soocke/pose-preview-go/ui/view"
)

// Container assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Capture  *model.CaptureModel
	Session  *model.SessionModel
	Viewport *model.ViewportModel

	Frames    camera.Service
	Detector  pose.Detector
	Projector *overlay.Projector
	Watcher   *presenter.FreshnessWatcher
	Selection view.SelectionOverlay

	RootView *view.RootView
	UI       view.UI

	// Presenters
	SessionPresenter *presenter.SessionPresenter
	StatusPresenter  *presenter.StatusPresenter
	PosePresenter    *presenter.PosePresenter
	CapturePresenter *presenter.CapturePresenter
	Loop             *presenter.Loop

	grab   atomic.Pointer[camera.Grabber]
	webcam *camera.Webcam
}

// frameAge adapts the frame service stats to the watcher's source interface.
type frameAge struct{ svc camera.Service }

func (f frameAge) LatestFrameAge() time.Duration { return f.svc.Stats().LatestFrameAge }

// BuildContainer constructs all components. Side-effects limited to asset
// loading and opening the configured frame source.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewSessionModel()
	c.Viewport = &model.ViewportModel{}

	skeleton, err := assets.SkeletonPairs()
	if err != nil {
		logger.Error("skeleton asset load failed", "error", err)
	}

	c.Projector = overlay.NewProjector(cfg.Mirror)
	c.Detector = pose.NewRemoteDetector(cfg.DetectorURL, pose.Config{
		MinConfidence: cfg.MinConfidence,
		MaxPoses:      cfg.MaxPoses,
	})
	c.Selection = view.NewSelectionOverlay(cfg, cfgPath, logger)

	// The service holds one Grabber for its lifetime; dispatch through the
	// container's pointer so the source can be swapped without a restart.
	dispatch := camera.Grabber(func() (*image.RGBA, int, error) {
		g := c.grab.Load()
		if g == nil {
			return nil, 0, errors.New("no frame source configured")
		}
		return (*g)()
	})
	c.Frames = camera.NewService(logger, dispatch, time.Duration(cfg.FrameIntervalMs)*time.Millisecond)
	c.Watcher = presenter.NewFreshnessWatcher(frameAge{c.Frames}, logger, 0)
	c.SetSource(cfg.Source)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger, c.Viewport, skeleton)
	c.UI = c.RootView

	// Presenters
	c.CapturePresenter = presenter.NewCapturePresenter(c.Capture, c.Frames, c.Watcher, c.RootView)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, c.RootView)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Capture, c.Watcher, c.RootView)
	c.PosePresenter = presenter.NewPosePresenter(c.Capture.Enabled, c.Frames, c.Detector, c.Projector, c.Viewport, c.RootView, logger)
	return c
}

// SetSource switches the active frame source. Unknown names fall back to the
// full-screen grabber. The previous webcam handle, if any, is released.
func (c *AppContainer) SetSource(name string) {
	var g camera.Grabber
	switch name {
	case "camera":
		cam, err := camera.OpenWebcam(c.Config.CameraIndex, c.Config.CameraRotation)
		if err != nil {
			c.Logger.Error("webcam open failed, keeping current source", "device", c.Config.CameraIndex, "error", err)
			return
		}
		c.closeWebcam()
		c.webcam = cam
		g = cam.Grab
	default:
		c.closeWebcam()
		g = func() (*image.RGBA, int, error) {
			if r := c.Selection.ActiveRect(); r != nil {
				return camera.ScreenRegionGrabber(*r)()
			}
			return camera.ScreenGrabber()()
		}
	}
	c.grab.Store(&g)
	c.Logger.Info("frame source set", "source", name)
}

// Close stops background work and releases the frame source.
func (c *AppContainer) Close() {
	if c.Watcher != nil {
		c.Watcher.Stop()
	}
	if c.Frames != nil {
		c.Frames.Stop()
	}
	c.closeWebcam()
	if c.Detector != nil {
		if err := c.Detector.Close(); err != nil {
			c.Logger.Warn("detector close failed", "error", err)
		}
	}
}

func (c *AppContainer) closeWebcam() {
	if c.webcam == nil {
		return
	}
	if err := c.webcam.Close(); err != nil {
		c.Logger.Warn("webcam close failed", "error", err)
	}
	c.webcam = nil
}
