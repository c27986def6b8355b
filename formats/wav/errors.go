// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidChannelCount = errors.New("channel count must be positive")
	ErrPartialFrame        = errors.New("sample count must be a multiple of channels")
	ErrAlreadyStarted      = errors.New("capture already started")
	ErrNotStarted          = errors.New("capture not started")
)
