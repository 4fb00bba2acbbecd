package annotation

import "errors"

var (
	ErrImageUnreadable    = errors.New("image unreadable")
	ErrExportWriteFailed  = errors.New("export write failed")
	ErrNoNextFile         = errors.New("no sequential file name")
	ErrSequenceIncomplete = errors.New("keypoint sequence incomplete")
	ErrNoImage            = errors.New("no image loaded")
)
