// Package constants defines shared constants used throughout navcoord
// and the demo book flow.
package constants

import "os"

// DebugEnvVar raises the internal coordinator logger to debug level when set.
const DebugEnvVar = "NAVCOORD_DEBUG"

// LogPathEnvVar overrides the log file path.
const LogPathEnvVar = "NAVCOORD_LOG_PATH"

// IsDebug returns true if NAVCOORD_DEBUG is set to a non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Screens of the demo book flow. The orange book is the root and is never
// pushed onto a path.
const (
	ScreenOrangeBook = "orange_book"
	ScreenRedBook    = "red_book"
	ScreenGreenBook  = "green_book"
	ScreenBlueBook   = "blue_book"
)

// Segue identifiers of the demo book flow.
const (
	// SegueBlueDismiss notifies the presenter when the blue book modal closes.
	SegueBlueDismiss = "blueDismiss"

	SegueUnwindToOrangeBook = "unwindToOrangeBook"
	SegueUnwindToRedBook    = "unwindToRedBook"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"
