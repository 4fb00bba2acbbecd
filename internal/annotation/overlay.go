package annotation

import (
	"image"
	"image/color"
)

// Segment is one wireframe line in image coordinates.
type Segment struct {
	From image.Point
	To   image.Point
}

// Marks is everything drawn over the base image for a keypoint sequence.
// Renderers paint Points first and Segments second.
type Marks struct {
	Points   []image.Point
	Segments []Segment
}

// PlanMarks computes the overlay for a sequence: every present keypoint, and
// every edge whose endpoints are both recorded and present.
func PlanMarks(points []Keypoint) Marks {
	var marks Marks

	for _, kp := range points {
		if kp.IsAbsent() {
			continue
		}
		marks.Points = append(marks.Points, kp.Point())
	}

	for _, e := range Edges {
		if e.From >= len(points) || e.To >= len(points) {
			continue
		}
		a, b := points[e.From], points[e.To]
		if a.IsAbsent() || b.IsAbsent() {
			continue
		}
		marks.Segments = append(marks.Segments, Segment{From: a.Point(), To: b.Point()})
	}

	return marks
}

// Renderer composites marks over a copy of base. base must not be modified.
type Renderer interface {
	Render(base image.Image, marks Marks) (image.Image, error)
}

// Style controls how points and wireframe lines look. The defaults are a
// bright 10px dot per joint and a thinner dark line per edge.
type Style struct {
	PointRadius int
	PointColor  color.RGBA
	LineWidth   int
	LineColor   color.RGBA
}

func DefaultStyle() Style {
	return Style{
		PointRadius: 5,
		PointColor:  color.RGBA{R: 255, A: 255},
		LineWidth:   3,
		LineColor:   color.RGBA{R: 128, A: 255},
	}
}
