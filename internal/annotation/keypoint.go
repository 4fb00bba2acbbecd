// Package annotation holds the keypoint annotation state for a single image:
// the ordered joint schema, the click/skip/undo sequence, the wireframe overlay
// plan and the plain-text export.
package annotation

import "image"

// SchemaSize is the number of joints collected per image.
const SchemaSize = 13

// Schema lists joint names in collection order. Index i of a keypoint
// sequence always belongs to Schema[i].
var Schema = [SchemaSize]string{
	"camera",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
}

// Edge connects two schema indices with a wireframe line.
type Edge struct {
	From int
	To   int
}

// Edges is the fixed wireframe: shoulders, arms, torso sides, hips and legs.
var Edges = []Edge{
	{1, 2},
	{1, 3},
	{2, 4},
	{3, 5},
	{4, 6},
	{1, 7},
	{2, 8},
	{7, 8},
	{7, 9},
	{8, 10},
	{9, 11},
	{10, 12},
}

// Keypoint is a clicked pixel location. Skipped joints use Absent.
type Keypoint struct {
	X int
	Y int
}

// Absent marks a joint the user explicitly skipped.
var Absent = Keypoint{X: -1, Y: -1}

func (k Keypoint) IsAbsent() bool {
	return k == Absent
}

func (k Keypoint) Point() image.Point {
	return image.Pt(k.X, k.Y)
}
