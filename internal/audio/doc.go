// Package audio plays the looping background music and the button click
// sound. A missing sound file or audio device never stops the app.
package audio
