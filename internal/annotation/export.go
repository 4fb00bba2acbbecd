package annotation

import (
	"strconv"
	"strings"
)

// placeholderRows are emitted after the camera row for joints this tool
// does not collect.
const placeholderRows = 4

// exportedJoints is how many keypoints after the camera make it into the
// export. Together with the camera row and the placeholders this keeps the
// file at SchemaSize lines.
const exportedJoints = SchemaSize - 1 - placeholderRows

const zeroRow = "0, 0, 0"

// FormatExport renders a complete keypoint sequence as export text. It
// returns "" unless exactly SchemaSize keypoints are present.
func FormatExport(points []Keypoint) string {
	if len(points) != SchemaSize {
		return ""
	}

	rows := make([]string, 0, SchemaSize)
	rows = append(rows, visibleRow(points[0]))
	for i := 0; i < placeholderRows; i++ {
		rows = append(rows, zeroRow)
	}
	for _, kp := range points[1 : 1+exportedJoints] {
		if kp.IsAbsent() {
			rows = append(rows, zeroRow)
			continue
		}
		rows = append(rows, visibleRow(kp))
	}

	return strings.Join(rows, "\n")
}

func visibleRow(kp Keypoint) string {
	return strconv.Itoa(kp.X) + ", " + strconv.Itoa(kp.Y) + ", 2"
}

var exportExtensions = []string{"jpeg", "jpg", "png"}

// ExportPath derives the keypoint file path from an image path by replacing
// the first occurrence of the first matching extension token with "txt".
// The second return is false when no token matches.
func ExportPath(imagePath string) (string, bool) {
	for _, token := range exportExtensions {
		if strings.Contains(imagePath, token) {
			return strings.Replace(imagePath, token, "txt", 1), true
		}
	}
	return "", false
}
