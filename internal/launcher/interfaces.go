package launcher

import "github.com/2cwldys/fear-launcher/internal/model"

// Opener hands a URL to the operating system
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a plain function to Opener
type OpenerFunc func(url string) error

// Open calls f(url)
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// GameLauncher starts a game for the current session
type GameLauncher interface {
	Launch(session model.Session, game model.Game) error
}
