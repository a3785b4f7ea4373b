package credential

import "errors"

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrRejected          = errors.New("rejected by server")
	ErrTransport         = errors.New("transport failure")
)

// OutcomeError - неуспешный исход отправки формы
type OutcomeError struct {
	Err     error
	Message string
	Status  int
}

func (e *OutcomeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *OutcomeError) Unwrap() error {
	return e.Err
}
