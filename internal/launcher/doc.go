// Package launcher starts the games through their Steam URLs.
package launcher
