package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrMalformedDocument   = errors.New("document could not be decoded")
	ErrMissingAPIKey       = errors.New("openai api key is not configured")
	ErrModelCallFailed     = errors.New("model call failed")
)
