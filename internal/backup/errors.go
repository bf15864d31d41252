package backup

import "errors"

var ErrRunning = errors.New("backup already running")
