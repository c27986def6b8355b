// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrNoCaptureSink      = errors.New("no capture sink configured for this kind")
	ErrUnknownCaptureKind = errors.New("unknown capture kind")
)
