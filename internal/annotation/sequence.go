package annotation

import "path/filepath"

// NextSequentialPath returns the path of the next file in a numbered batch:
// the first run of ASCII digits in the file name is incremented, keeping the
// run's width when it started with a zero. The directory part is untouched.
// ok is false when the file name holds no digits.
func NextSequentialPath(current string) (next string, ok bool) {
	dir, name := filepath.Split(current)

	start, end := firstDigitRun(name)
	if start < 0 {
		return "", false
	}

	return dir + name[:start] + incrementDigits(name[start:end]) + name[end:], true
}

func firstDigitRun(s string) (int, int) {
	start := -1
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return start, i
		}
	}
	if start < 0 {
		return -1, -1
	}
	return start, len(s)
}

// incrementDigits adds one to a decimal string. Leading zeros survive, so a
// zero-padded run keeps its width until it overflows ("099" -> "100"), and an
// unpadded run simply grows ("99" -> "100").
func incrementDigits(run string) string {
	digits := []byte(run)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return string(digits)
		}
		digits[i] = '0'
	}
	return "1" + string(digits)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
