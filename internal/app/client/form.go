package client

import "housing/internal/domain/credential"

// View - экран, который сейчас видит пользователь
type View int

const (
	ViewForm View = iota
	ViewHome
)

func (v View) String() string {
	if v == ViewHome {
		return "home"
	}
	return "form"
}

// Form - состояние формы входа/регистрации в рамках одной сессии.
// Принадлежит одному вызывающему, не потокобезопасна.
type Form struct {
	Mode     credential.Mode
	Username string
	Password string
	Message  string
	View     View
}

func NewForm() *Form {
	return &Form{Mode: credential.ModeLogin, View: ViewForm}
}

func (f *Form) SetMode(m credential.Mode) {
	f.Mode = m
}

func (f *Form) Credentials() credential.Credentials {
	return credential.Credentials{Username: f.Username, Password: f.Password}
}

// Apply переносит результат отправки в состояние формы.
// При ошибке поля не трогаются, чтобы их можно было поправить.
func (f *Form) Apply(out credential.Outcome) {
	f.Message = out.Message

	switch out.Action {
	case credential.ActionClearFields:
		f.Username = ""
		f.Password = ""
	case credential.ActionNavigateHome:
		f.View = ViewHome
	}
}
