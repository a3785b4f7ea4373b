// cmd/client/cmd/auth/signup.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"housing/cmd/client/cmd/prompt"
	"housing/cmd/client/cmd/types"
	"housing/internal/domain/credential"
)

var SignupCmd = &cobra.Command{
	Use:     "signup",
	Aliases: []string{"register"},
	Short:   "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя по email.

Адрес проверяется локально до отправки на сервер.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация нового пользователя ===")
		fmt.Println()

		email, err := prompt.Line("Email: ")
		if err != nil {
			return err
		}

		password, err := prompt.Password("Пароль: ")
		if err != nil {
			return err
		}

		passwordConfirm, err := prompt.Password("Повторите пароль: ")
		if err != nil {
			return err
		}

		if password != passwordConfirm {
			return fmt.Errorf("пароли не совпадают")
		}

		out := app.Submit(cmd.Context(), credential.ModeSignup, credential.Credentials{
			Username: email,
			Password: password,
		})
		prompt.Outcome(os.Stdout, out)

		if err := out.Err(); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println("Теперь вы можете войти в систему: housing auth login")
		return nil
	},
}
