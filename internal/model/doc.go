package model

// Package model defines the data structures shared by the installer, the
// launcher and the UI: install steps and their results, the user session,
// run status and the list of launchable games. Values are plain structs meant
// to be passed by value and rendered directly by the UI.
