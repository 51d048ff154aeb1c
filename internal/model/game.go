package model

import "fmt"

// Game is a title that can be started through Steam
type Game struct {
	Name       string
	SteamAppID int
}

// Launchable titles
var (
	GameFEAR            = Game{Name: "F.E.A.R.", SteamAppID: 21090}
	GameExtractionPoint = Game{Name: "F.E.A.R. Extraction Point", SteamAppID: 21110}
	GamePerseusMandate  = Game{Name: "F.E.A.R. Perseus Mandate", SteamAppID: 21120}
)

// Games returns the launchable titles in menu order
func Games() []Game {
	return []Game{GameFEAR, GameExtractionPoint, GamePerseusMandate}
}

// SteamURL returns the steam:// URL that starts the game
func (g Game) SteamURL() string {
	return fmt.Sprintf("steam://run/%d", g.SteamAppID)
}
