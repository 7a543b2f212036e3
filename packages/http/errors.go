package http

import "fmt"

// ConnectError covers DNS failures, refused connections, TLS failures and
// timeouts alike.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return "Unable to connect to the server. Perhaps the network is offline or the server hostname is invalid."
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// JSONBodyError is returned when the --json payload does not parse
type JSONBodyError struct {
	Err error
}

func (e *JSONBodyError) Error() string {
	return fmt.Sprintf("The JSON body is malformed: %v.", e.Err)
}

func (e *JSONBodyError) Unwrap() error {
	return e.Err
}
