package document

import "errors"

var (
	ErrMissingFile       = errors.New("file and fileName are required")
	ErrInvalidEncoding   = errors.New("file is not valid base64")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("file format not supported for extraction")
)
