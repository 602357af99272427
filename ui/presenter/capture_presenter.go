package presenter

// CaptureModel provides enabled state access.
type CaptureModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what the presenter needs from the frame service.
type LifecycleContract interface {
	Start()
	Stop()
}

// CaptureView updates UI elements affected by toggling the camera stream.
type CaptureView interface {
	PreviewReset()
	ConfigEditable(bool)
}

// StallWatcher is started while the stream runs and stopped with it.
type StallWatcher interface {
	Start()
	Stop()
}

// CapturePresenter owns presentation logic for toggling the camera stream.
type CapturePresenter struct {
	model   CaptureModel
	service LifecycleContract
	watcher StallWatcher
	view    CaptureView
}

func NewCapturePresenter(model CaptureModel, service LifecycleContract, watcher StallWatcher, view CaptureView) *CapturePresenter {
	return &CapturePresenter{model: model, service: service, watcher: watcher, view: view}
}

// Enable starts the frame service and the stall watcher. Idempotent.
func (c *CapturePresenter) Enable() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if c.model.Enabled() { // already enabled
		return
	}
	c.service.Start()
	c.model.SetEnabled(true)
	if c.watcher != nil {
		c.watcher.Start()
	}
	c.view.ConfigEditable(false)
}

// Disable stops the frame service and the watcher, resetting preview. Idempotent.
func (c *CapturePresenter) Disable() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if !c.model.Enabled() { // already disabled
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	if c.watcher != nil {
		c.watcher.Stop()
	}
	c.view.PreviewReset()
	c.view.ConfigEditable(true)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *CapturePresenter) Toggle() {
	if c == nil || c.model == nil || c.service == nil || c.view == nil {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
