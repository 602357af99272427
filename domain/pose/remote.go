package pose

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const defaultRequestTimeout = 2 * time.Second

// detectResponse mirrors the detection server's wire format.
type detectResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Poses   []Pose `json:"poses"`
}

// RemoteDetector sends frames as JPEG to a pose detection HTTP server and
// decodes the returned keypoints. It is safe for use from a single worker
// goroutine; it keeps no per-frame state.
type RemoteDetector struct {
	url     string
	client  *http.Client
	cfg     Config
	quality int
}

// NewRemoteDetector constructs a detector client posting to url.
func NewRemoteDetector(url string, cfg Config) *RemoteDetector {
	return &RemoteDetector{
		url:     url,
		client:  &http.Client{Timeout: defaultRequestTimeout},
		cfg:     cfg,
		quality: 80,
	}
}

// Detect encodes the frame, posts it and returns the accepted poses with
// keypoints in frame pixel coordinates.
func (d *RemoteDetector) Detect(frame *image.RGBA) ([]Pose, error) {
	if d == nil || d.client == nil {
		return nil, fmt.Errorf("detector not initialized")
	}
	if frame == nil {
		return nil, fmt.Errorf("nil frame")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: d.quality}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	resp, err := d.client.Post(d.url, "image/jpeg", &buf)
	if err != nil {
		return nil, fmt.Errorf("post frame: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector status %d", resp.StatusCode)
	}

	var dr detectResponse
	if err := sonic.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !dr.Success {
		return nil, fmt.Errorf("detector rejected frame: %s", dr.Error)
	}
	return FilterPoses(dr.Poses, d.cfg), nil
}

// Close is a no-op; the HTTP client holds no per-detector resources.
func (d *RemoteDetector) Close() error { return nil }

var _ Detector = (*RemoteDetector)(nil)
