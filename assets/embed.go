package assets

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
)

// SkeletonJSON contains the raw COCO skeleton edge list: index pairs of
// keypoints to connect with limb lines in the overlay.
//
//go:embed skeleton.json
var SkeletonJSON []byte

type skeletonFile struct {
	Pairs [][2]int `json:"pairs"`
}

// SkeletonPairs decodes the embedded edge list.
func SkeletonPairs() ([][2]int, error) {
	if len(SkeletonJSON) == 0 {
		return nil, fmt.Errorf("embedded skeleton.json is empty")
	}
	var f skeletonFile
	if err := sonic.Unmarshal(SkeletonJSON, &f); err != nil {
		return nil, fmt.Errorf("decode skeleton.json: %w", err)
	}
	if len(f.Pairs) == 0 {
		return nil, fmt.Errorf("skeleton.json has no pairs")
	}
	return f.Pairs, nil
}
