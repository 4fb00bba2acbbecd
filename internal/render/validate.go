package render

import (
	"fmt"

	"gocv.io/x/gocv"
)

const maxDimension = 32768

func validateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if mat.Channels() != 3 {
		return fmt.Errorf("%s requires 3 channels, got %d", operation, mat.Channels())
	}

	return nil
}
