package output

import "os"

// writeBodyFile creates or truncates path and writes body to it. The file is
// closed before returning on every path.
func writeBodyFile(path string, body []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &OutputFileError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &OutputFileError{Path: path, Err: closeErr}
		}
	}()

	if _, err := file.Write(body); err != nil {
		return &OutputFileError{Path: path, Err: err}
	}
	return nil
}
