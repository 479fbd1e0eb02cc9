package config

import "time"

// Input limits enforced by the services
const (
	// MaxNotesLength caps job record notes
	MaxNotesLength = 500

	// MaxFolderNameLength caps folder names
	MaxFolderNameLength = 255

	// MaxFileNameLength caps uploaded file names
	MaxFileNameLength = 255

	// MaxPositionLength caps job position and company fields
	MaxPositionLength = 255

	// MaxUploadBytes caps one multipart upload request body
	MaxUploadBytes = 50 << 20

	// ViewHandleTTL is how long a file view handle stays usable without
	// an explicit close
	ViewHandleTTL = 5 * time.Minute
)

// Persistence slot keys. Renaming one is a breaking migration for any
// existing data directory.
const (
	JobsSlot      = "jobs"
	RemindersSlot = "reminders"
)
