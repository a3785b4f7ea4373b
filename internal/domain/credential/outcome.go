package credential

import "net/http"

const (
	MsgInvalidEmail       = "Invalid email format"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgSignupSuccess      = "Signup successful!"
	MsgLoginSuccess       = "Login successful!"
	MsgSignupFailed       = "Signup failed"
	MsgLoginFailed        = "Login failed"
	MsgNetworkError       = "Network error occurred"
)

// Kind классифицирует исход отправки
type Kind int

const (
	KindSuccess Kind = iota
	KindValidation
	KindRejected
	KindTransport
)

// Action - что форма должна сделать после отправки
type Action int

const (
	ActionNone Action = iota
	ActionClearFields
	ActionNavigateHome
)

// Outcome - результат одной попытки отправки формы
type Outcome struct {
	Message string
	Kind    Kind
	Action  Action
	Status  int
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == KindSuccess
}

// Err возвращает nil для успешного исхода
func (o Outcome) Err() error {
	var sentinel error
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindValidation:
		sentinel = ErrInvalidIdentifier
	case KindRejected:
		sentinel = ErrRejected
	default:
		sentinel = ErrTransport
	}

	return &OutcomeError{Err: sentinel, Message: o.Message, Status: o.Status}
}

// InvalidIdentifier - исход локальной проверки, запрос не отправлялся
func InvalidIdentifier() Outcome {
	return Outcome{Message: MsgInvalidEmail, Kind: KindValidation}
}

// NetworkError - ответ от сервера не получен
func NetworkError() Outcome {
	return Outcome{Message: MsgNetworkError, Kind: KindTransport}
}

// FromStatus переводит HTTP-статус ответа в исход
func FromStatus(mode Mode, status int) Outcome {
	if status >= 200 && status < 300 {
		if mode == ModeSignup {
			return Outcome{Message: MsgSignupSuccess, Kind: KindSuccess, Action: ActionClearFields, Status: status}
		}
		return Outcome{Message: MsgLoginSuccess, Kind: KindSuccess, Action: ActionNavigateHome, Status: status}
	}

	out := Outcome{Kind: KindRejected, Status: status}
	switch status {
	case http.StatusBadRequest:
		out.Message = MsgInvalidEmail
	case http.StatusConflict:
		out.Message = MsgUserExists
	case http.StatusUnauthorized:
		out.Message = MsgInvalidCredentials
	default:
		if mode == ModeSignup {
			out.Message = MsgSignupFailed
		} else {
			out.Message = MsgLoginFailed
		}
	}

	return out
}
