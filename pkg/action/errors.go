package action

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicateKey  = errors.New("duplicate action key")
	ErrUnknownProp   = errors.New("unknown prop")
	ErrInvalidProp   = errors.New("invalid prop value")
)

// MissingPropError lists required props that had no value at invocation
type MissingPropError struct {
	Props []string
}

func (e *MissingPropError) Error() string {
	return fmt.Sprintf("missing required props: %s", strings.Join(e.Props, ", "))
}
