package model

import "strings"

// Session holds the state chosen by the user while the app is open.
// The UI owns it and hands a copy to the installer and launcher.
type Session struct {
	GamePath     string
	MusicPlaying bool
}

// HasGamePath reports whether the user picked a game directory
func (s Session) HasGamePath() bool {
	return strings.TrimSpace(s.GamePath) != ""
}
