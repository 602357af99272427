package presenter

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/pose-preview-go/domain/camera"
	"github.com/soocke/pose-preview-go/domain/overlay"
	"github.com/soocke/pose-preview-go/domain/pose"
	"github.com/soocke/pose-preview-go/ui/images"
	"github.com/soocke/pose-preview-go/ui/model"
)

// FrameSource supplies the most recent frame captured from the camera.
type FrameSource interface {
	Running() bool
	LatestFrame() camera.FrameSnapshot
}

// OverlayView describes the UI surface updated by the presenter: a preview
// that draws the frame with landmark circles on top.
type OverlayView interface {
	RenderOverlay(snap camera.FrameSnapshot, points []overlay.Point)
}

type detectionTask struct {
	snapshot camera.FrameSnapshot
	detector pose.Detector
}

type detectionResult struct {
	sequence  uint64
	frameW    float64
	frameH    float64
	landmarks []overlay.Point
	err       error
	duration  time.Duration
}

// PosePresenter coordinates the preview render loop and detection
// scheduling. Each tick it drains completed detections into the projector,
// hands the freshest frame to a single worker goroutine (latest-wins, stale
// tasks dropped), and renders the current landmark set over the current
// frame. Stale landmarks persist until the next successful detection.
type PosePresenter struct {
	Enabled   func() bool
	Source    FrameSource
	Detector  pose.Detector
	Projector *overlay.Projector
	Viewport  *model.ViewportModel
	View      OverlayView
	logger    *slog.Logger

	workerOnce sync.Once
	workCh     chan detectionTask
	resultCh   chan detectionResult

	lastDetectSeq  uint64
	lastDetectTime time.Time
	detectDelay    time.Duration
}

// NewPosePresenter constructs a pose presenter.
func NewPosePresenter(enabled func() bool, source FrameSource, detector pose.Detector, projector *overlay.Projector, viewport *model.ViewportModel, view OverlayView, logger *slog.Logger) *PosePresenter {
	return &PosePresenter{
		Enabled:     enabled,
		Source:      source,
		Detector:    detector,
		Projector:   projector,
		Viewport:    viewport,
		View:        view,
		logger:      logger,
		workCh:      make(chan detectionTask, 1),
		resultCh:    make(chan detectionResult, 1),
		detectDelay: 65 * time.Millisecond,
	}
}

// ProcessFrame runs one tick: handle worker results, schedule detection on
// the latest frame, and render the overlay.
func (p *PosePresenter) ProcessFrame() {
	if p == nil || p.Enabled == nil || p.Source == nil || p.Projector == nil || p.View == nil {
		return
	}

	p.ensureWorker()

	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			goto drained
		}
	}

drained:
	if !p.Enabled() || !p.Source.Running() {
		return
	}

	snapshot := p.Source.LatestFrame()
	if snapshot.Image == nil {
		return
	}

	p.maybeDispatch(snapshot)

	if p.Viewport != nil {
		if w, h, ok := p.Viewport.Size(); ok {
			p.Projector.UpdateViewportSize(float64(w), float64(h))
		}
	}
	p.View.RenderOverlay(snapshot, p.Projector.Project())
}

func (p *PosePresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *PosePresenter) runWorker() {
	for task := range p.workCh {
		res := executeTask(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *PosePresenter) maybeDispatch(snapshot camera.FrameSnapshot) {
	if p.Detector == nil {
		return
	}
	if snapshot.Sequence == 0 || snapshot.Sequence == p.lastDetectSeq {
		return
	}
	if !p.lastDetectTime.IsZero() && time.Since(p.lastDetectTime) < p.detectDelay {
		return
	}
	p.lastDetectSeq = snapshot.Sequence
	p.lastDetectTime = time.Now()
	p.dispatchTask(detectionTask{snapshot: snapshot, detector: p.Detector})
}

func (p *PosePresenter) dispatchTask(task detectionTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

// executeTask rotates the frame upright and runs detection, so returned
// keypoints and dimensions are already orientation-normalized.
func executeTask(task detectionTask) detectionResult {
	res := detectionResult{sequence: task.snapshot.Sequence}
	frame := task.snapshot.Image
	if frame == nil {
		res.err = errors.New("nil frame")
		return res
	}
	if task.detector == nil {
		res.err = errors.New("nil detector")
		return res
	}

	upright := images.Rotate(frame, task.snapshot.Rotation)
	b := upright.Bounds()
	res.frameW, res.frameH = float64(b.Dx()), float64(b.Dy())

	start := time.Now()
	poses, err := task.detector.Detect(upright)
	res.duration = time.Since(start)
	if err != nil {
		res.err = err
		return res
	}

	flat := pose.Flatten(poses)
	if len(flat) > 0 {
		res.landmarks = make([]overlay.Point, len(flat))
		for i, lm := range flat {
			res.landmarks[i] = overlay.Point{X: lm.X, Y: lm.Y}
		}
	}
	return res
}

// handleResult applies one completed detection. Failures drop the frame
// without touching the landmark snapshot; successes replace it wholesale,
// including replacing it with an empty set when nobody is in frame.
func (p *PosePresenter) handleResult(res detectionResult) {
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("detection", "error", res.err, "sequence", res.sequence)
		}
		return
	}
	p.Projector.UpdateFrameSize(res.frameW, res.frameH)
	p.Projector.SetLandmarks(res.landmarks)
	if p.logger != nil {
		p.logger.Debug("detection.result",
			"sequence", res.sequence,
			"landmarks", len(res.landmarks),
			"duration", res.duration,
		)
	}
}
