// Package pose defines the detector boundary: landmark types, the Detector
// contract and concrete detector clients. Detection itself is an external
// black box; this package only shapes its inputs and outputs.
package pose

import "image"

// Keypoint indices follow the 17-point COCO convention used by most pose
// estimation models.
const (
	Nose          = 0
	LeftEye       = 1
	RightEye      = 2
	LeftEar       = 3
	RightEar      = 4
	LeftShoulder  = 5
	RightShoulder = 6
	LeftElbow     = 7
	RightElbow    = 8
	LeftWrist     = 9
	RightWrist    = 10
	LeftHip       = 11
	RightHip      = 12
	LeftKnee      = 13
	RightKnee     = 14
	LeftAnkle     = 15
	RightAnkle    = 16
	NumKeypoints  = 17
)

// Landmark is a detected body-joint coordinate in frame pixel space.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Pose is one detected person: a keypoint set plus an overall score.
type Pose struct {
	Keypoints []Landmark `json:"keypoints"`
	Score     float64    `json:"score"`
}

// Detector analyzes a frame and returns detected poses. Implementations run
// the actual model (remotely or in-process); a failed detection returns an
// error and the frame is simply dropped by the caller.
type Detector interface {
	Detect(frame *image.RGBA) ([]Pose, error)
	Close() error
}

// Config holds detection thresholds.
type Config struct {
	// MinConfidence is the minimum pose score to accept (0.0-1.0).
	MinConfidence float64
	// MaxPoses caps how many poses are kept per frame (0 = unlimited).
	MaxPoses int
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{MinConfidence: 0.5, MaxPoses: 1}
}

// FilterPoses drops poses below cfg.MinConfidence and truncates to
// cfg.MaxPoses, preserving input order.
func FilterPoses(poses []Pose, cfg Config) []Pose {
	out := poses[:0:0]
	for _, p := range poses {
		if p.Score < cfg.MinConfidence {
			continue
		}
		out = append(out, p)
		if cfg.MaxPoses > 0 && len(out) >= cfg.MaxPoses {
			break
		}
	}
	return out
}

// Flatten concatenates the keypoints of all poses into one landmark list,
// in pose order. The projector consumes a single flat set per frame.
func Flatten(poses []Pose) []Landmark {
	var n int
	for _, p := range poses {
		n += len(p.Keypoints)
	}
	if n == 0 {
		return nil
	}
	out := make([]Landmark, 0, n)
	for _, p := range poses {
		out = append(out, p.Keypoints...)
	}
	return out
}
