package domain

// UserField selects which identity attribute an availability check targets.
// The numeric values are part of the public API (path parameter).
type UserField int

const (
	FieldUsername UserField = 1
	FieldPhone    UserField = 2
	FieldEmail    UserField = 3
)

// Valid reports whether f is one of the known selectors.
func (f UserField) Valid() bool {
	switch f {
	case FieldUsername, FieldPhone, FieldEmail:
		return true
	}
	return false
}

func (f UserField) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	}
	return "unknown"
}
