package result

import "fmt"

// Kind tells which variant a Result holds.
type Kind uint8

const (
	KindOk Kind = iota
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindErr:
		return "Err"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind reads the discriminator of the plain-data shape. "Success" and
// "Fail" are accepted as older spellings of "Ok" and "Err".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Ok", "Success":
		return KindOk, nil
	case "Err", "Fail":
		return KindErr, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}
