package report

import "errors"

// ErrUnknownFormat indicates a format name other than "json" or "yaml".
var ErrUnknownFormat = errors.New("report: unknown format")
