package output

import "fmt"

// StatusError is returned for a non-2xx response outside head-only mode
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code: %d.", e.Code)
}

type OutputFileError struct {
	Path string
	Err  error
}

func (e *OutputFileError) Error() string {
	return fmt.Sprintf("Unable to write the response body to %s: %v.", e.Path, e.Err)
}

func (e *OutputFileError) Unwrap() error {
	return e.Err
}
