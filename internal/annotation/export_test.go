package annotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func absentSequence() []Keypoint {
	points := make([]Keypoint, SchemaSize)
	for i := range points {
		points[i] = Absent
	}
	return points
}

func TestFormatExport_CameraOnly(t *testing.T) {
	points := absentSequence()
	points[0] = Keypoint{X: 100, Y: 50}

	want := "100, 50, 2\n" + strings.Repeat("0, 0, 0\n", 11) + "0, 0, 0"
	assert.Equal(t, want, FormatExport(points))
	assert.Len(t, strings.Split(FormatExport(points), "\n"), SchemaSize)
}

func TestFormatExport_MapsJointsOneToEight(t *testing.T) {
	points := make([]Keypoint, SchemaSize)
	for i := range points {
		points[i] = Keypoint{X: i * 10, Y: i*10 + 1}
	}
	points[3] = Absent

	lines := strings.Split(FormatExport(points), "\n")
	assert.Len(t, lines, SchemaSize)
	assert.Equal(t, "0, 1, 2", lines[0])
	for i := 1; i <= 4; i++ {
		assert.Equal(t, "0, 0, 0", lines[i], "placeholder row %d", i)
	}
	assert.Equal(t, "10, 11, 2", lines[5])
	assert.Equal(t, "20, 21, 2", lines[6])
	assert.Equal(t, "0, 0, 0", lines[7], "absent joint 3")
	assert.Equal(t, "80, 81, 2", lines[12])
	assert.NotContains(t, FormatExport(points), "90, 91, 2")
}

func TestFormatExport_EmptyUnlessComplete(t *testing.T) {
	for n := 0; n < SchemaSize; n++ {
		points := make([]Keypoint, n)
		assert.Empty(t, FormatExport(points), "length %d", n)
	}
	assert.Empty(t, FormatExport(make([]Keypoint, SchemaSize+1)))
}

func TestExportPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"/data/frame007.png", "/data/frame007.txt", true},
		{"/data/frame007.jpg", "/data/frame007.txt", true},
		{"/data/frame007.jpeg", "/data/frame007.txt", true},
		{"/png/frame.png", "/txt/frame.png", true},
		{"/data/a.jpeg.png", "/data/a.txt.png", true},
		{"/data/frame.bmp", "", false},
	}
	for _, tc := range cases {
		got, ok := ExportPath(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
