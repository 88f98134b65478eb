package utils

import "github.com/google/uuid"

// NewID generates record and blob-object names.
func NewID() string { return uuid.NewString() }
