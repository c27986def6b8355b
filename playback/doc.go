// SPDX-License-Identifier: EPL-2.0

// Package playback connects a mixing engine to the platform audio device
// through ebitengine/oto. The device pulls mixed samples at its own
// cadence; the engine's silence-padding guarantees the callback always
// completes in bounded time.
//
// Build with the headless tag to get a no-op player with the same surface
// for environments without audio hardware.
package playback
