package credential

// Credentials - данные, введенные пользователем в форму
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Mode определяет, регистрируется пользователь или входит
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

func (m Mode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

// Path возвращает путь эндпоинта относительно API-префикса
func (m Mode) Path() string {
	return "/" + m.String()
}

// ParseMode разбирает режим из строки ("login", "signup", "l", "s")
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "login", "l":
		return ModeLogin, true
	case "signup", "s":
		return ModeSignup, true
	}
	return ModeLogin, false
}
