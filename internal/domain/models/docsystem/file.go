package docsystem

import (
	"time"
)

// File is an uploaded document owned by exactly one folder.
// Files are immutable once created; the only mutation is deletion.
type File struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Size      int64     `json:"size" db:"size"`
	MediaType string    `json:"type" db:"media_type"`
	Payload   []byte    `json:"-" db:"payload"`
	FolderID  int64     `json:"folderId" db:"folder_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Upload is one incoming file in an upload batch. MediaType may be empty,
// in which case the service sniffs it from the payload.
type Upload struct {
	Name      string
	MediaType string
	Payload   []byte
}
