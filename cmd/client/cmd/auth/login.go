// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"housing/cmd/client/cmd/prompt"
	"housing/cmd/client/cmd/types"
	"housing/internal/domain/credential"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере Madison Housing Dataset.

После входа cookie сессии сохраняется локально, и команда home
показывает домашний экран.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		email, err := prompt.Line("Email: ")
		if err != nil {
			return err
		}

		password, err := prompt.Password("Пароль: ")
		if err != nil {
			return err
		}

		out := app.Submit(cmd.Context(), credential.ModeLogin, credential.Credentials{
			Username: email,
			Password: password,
		})
		prompt.Outcome(os.Stdout, out)

		if err := out.Err(); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println("Домашний экран: housing home")
		return nil
	},
}
