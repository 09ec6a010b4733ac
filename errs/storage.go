package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Blob-storage specific errors
var (
	ErrUnsupportedMediaType    = errors.New("unsupported media type")
	ErrFileTooLarge            = errors.New("file too large")
	ErrStorageOperation        = errors.New("storage operation failed")
	ErrDirectUploadUnsupported = errors.New("direct upload not supported by storage backend")
)

// NewUnsupportedMediaTypeError rejects an upload whose declared content type
// is not in the allow-list. Validation failures are 400s, matching the rest
// of the request-validation taxonomy.
func NewUnsupportedMediaTypeError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedMediaType,
		Details:    fmt.Sprintf("Content type %q is not allowed", contentType),
		Field:      "content_type",
	}
}

func NewFileTooLargeError(size, max int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File size %d exceeds the %d byte ceiling", size, max),
		Field:      "file",
	}
}

func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageOperation,
		Details:    fmt.Sprintf("Storage %s failed", operation),
		Cause:      cause,
	}
}

func NewDirectUploadUnsupportedError(backend string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDirectUploadUnsupported,
		Details:    fmt.Sprintf("The %s storage backend cannot issue pre-signed upload URLs", backend),
	}
}

func IsUnsupportedMediaType(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType)
}

func IsFileTooLarge(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}
