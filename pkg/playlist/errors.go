package playlist

// DecodeError is returned by Unmarshal when the input is not decodable as
// text. No partial playlist is returned alongside it.
type DecodeError struct {
	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return "cannot decode playlist: " + e.Reason
}
