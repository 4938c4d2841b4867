package domain

import "errors"

// ErrFileNotFound is an error thrown when no metadata record exists for a uid
var ErrFileNotFound = errors.New("file not found")

// ErrBlobNotFound is an error thrown when no blob exists for a uid
var ErrBlobNotFound = errors.New("blob not found")

// ErrMissingUploadPart is an error thrown when a multipart body carries no file part
var ErrMissingUploadPart = errors.New("missing upload file part")
