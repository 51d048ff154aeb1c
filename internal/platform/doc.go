package platform

// Package platform contains OS integration glue: directory helpers, bundled
// resource lookup, and opening URLs and folders with the system handler.
