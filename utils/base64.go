// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/base64"
	"fmt"
)

// DecodeBase64 decodes a standard-alphabet base64 string into raw bytes.
// The whole string is decoded in one operation; there is no streaming.
//
// Callers must strip any "data:...;base64," URL prefix before this boundary.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}

	return data, nil
}
