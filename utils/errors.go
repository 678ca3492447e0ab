package utils

import "errors"

var (
	ErrMalformedBase64 = errors.New("malformed base64 input")
)
