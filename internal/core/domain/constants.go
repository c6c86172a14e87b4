package domain

import "errors"

var (
	ErrEmptyPrompt       = errors.New("empty prompt")
	ErrMissingImage      = errors.New("missing image")
	ErrNoResult          = errors.New("no edited image available")
	ErrMalformedDataURL  = errors.New("malformed data URL")
	ErrNoResponse        = errors.New("no response from model")
	ErrRequestInFlight   = errors.New("edit request already in progress")
	ErrUnknownExample    = errors.New("unknown example prompt")
	ErrNoEditableContent = errors.New("no editable content in response")
)
