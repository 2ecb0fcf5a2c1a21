package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FileDescriptor describes a source file at the moment it was encoded.
// It is a value: copies never share state with the session that produced them.
type FileDescriptor struct {
	Name                    string `json:"name" yaml:"name"`
	SizeBytes               int64  `json:"size" yaml:"size"`
	MimeType                string `json:"type" yaml:"type"`
	LastModifiedEpochMillis int64  `json:"lastModified" yaml:"lastModified"`
}

// NewFileDescriptor builds a descriptor from file metadata. The declared MIME
// type is derived from the file name, the way a browser fills File.type.
func NewFileDescriptor(name string, size int64, modTime time.Time) FileDescriptor {
	return FileDescriptor{
		Name:                    name,
		SizeBytes:               size,
		MimeType:                MimeTypeForName(name),
		LastModifiedEpochMillis: modTime.UnixMilli(),
	}
}

// LastModified returns the modification timestamp as a time.Time.
func (d FileDescriptor) LastModified() time.Time {
	return time.UnixMilli(d.LastModifiedEpochMillis)
}

// DisplayType returns the declared type, or "Unknown type" when none was declared.
func (d FileDescriptor) DisplayType() string {
	if d.MimeType == "" {
		return "Unknown type"
	}
	return d.MimeType
}

// Validate checks the structural constraints of the descriptor.
// It does not apply the MIME allow-list; that is the validator's job.
func (d FileDescriptor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.SizeBytes, validation.Min(int64(0))),
	)
}
