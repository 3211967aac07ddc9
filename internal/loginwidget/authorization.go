package loginwidget

import "fmt"

// Authorization is the outcome of a payload check.
type Authorization int

const (
	InvalidHash Authorization = iota
	MissingFields
	InvalidAuthDateFormat
	TooOld
	Valid
)

var authorizationNames = [...]string{
	InvalidHash:           "InvalidHash",
	MissingFields:         "MissingFields",
	InvalidAuthDateFormat: "InvalidAuthDateFormat",
	TooOld:                "TooOld",
	Valid:                 "Valid",
}

func (a Authorization) String() string {
	if a < 0 || int(a) >= len(authorizationNames) {
		return fmt.Sprintf("Authorization(%d)", int(a))
	}
	return authorizationNames[a]
}

// MarshalText renders the outcome by name, so it reads well in JSON output
// and structured logs.
func (a Authorization) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
