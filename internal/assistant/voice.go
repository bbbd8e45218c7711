package assistant

import (
	"fmt"
	"io"
)

// DeviceOpener acquires the microphone. Injectable so tests and the
// offline path never touch real devices. The production opener lives in
// the TUI layer where platform access belongs.
type DeviceOpener interface {
	OpenMicrophone() (io.Closer, error)
}

// VoiceSession is a stub: it manages the device handle and status text
// only. Streaming transcription is not implemented and no audio leaves
// the machine.
type VoiceSession struct {
	online bool
	opener DeviceOpener
	mic    io.Closer
}

// NewVoiceSession wires the stub. opener may be nil when the platform has
// no microphone support; that reads as a denial.
func NewVoiceSession(online bool, opener DeviceOpener) *VoiceSession {
	return &VoiceSession{online: online, opener: opener}
}

// Start attempts to begin a voice session and returns the status text to
// show as an assistant message. Without a credential it short-circuits
// before any device access. Denial leaves the session inactive.
func (v *VoiceSession) Start() string {
	if v.Active() {
		return "Voice session is already active."
	}
	if !v.online {
		return "Voice mode needs a configured API key. Save one with `folio config --key ...`, or keep typing; I answer the same questions either way."
	}
	if v.opener == nil {
		return "No microphone is available on this system. Voice session not started."
	}
	mic, err := v.opener.OpenMicrophone()
	if err != nil {
		return fmt.Sprintf("Microphone access was denied (%v). Voice session not started.", err)
	}
	v.mic = mic
	return "Voice session active. Live transcription is not part of this build, so keep typing your questions; press ctrl+v again to release the microphone."
}

// Active reports whether a device handle is held.
func (v *VoiceSession) Active() bool {
	return v.mic != nil
}

// Stop releases the device handle if one is held.
func (v *VoiceSession) Stop() {
	if v.mic != nil {
		_ = v.mic.Close()
		v.mic = nil
	}
}
