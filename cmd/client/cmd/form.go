package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"housing/cmd/client/cmd/prompt"
	"housing/cmd/client/cmd/types"
	"housing/internal/app/client"
	"housing/internal/domain/credential"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Интерактивная форма входа и регистрации",
	Long: `Пошаговая форма: выберите режим (login/signup), введите email и пароль.

После успешной регистрации поля очищаются, после успешного входа
открывается домашний экран. Для выхода введите q.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("=== Welcome to the Madison Housing Dataset ===")

		form := client.NewForm()
		for form.View == client.ViewForm {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			fmt.Println()
			choice, err := prompt.Line(fmt.Sprintf("Режим [login/signup, q - выход] (%s): ", form.Mode))
			if err != nil {
				return err
			}
			if choice == "q" {
				return nil
			}
			if choice != "" {
				mode, ok := credential.ParseMode(choice)
				if !ok {
					fmt.Println("Неизвестный режим:", choice)
					continue
				}
				form.SetMode(mode)
			}

			label := "Email: "
			if form.Username != "" {
				label = fmt.Sprintf("Email (%s): ", form.Username)
			}
			email, err := prompt.Line(label)
			if err != nil {
				return err
			}
			if email != "" {
				form.Username = email
			}

			password, err := prompt.Password("Пароль: ")
			if err != nil {
				return err
			}
			form.Password = password

			out := app.SubmitForm(cmd.Context(), form)
			prompt.Outcome(os.Stdout, out)
		}

		sess, err := app.CurrentSession()
		username := form.Username
		if err == nil {
			username = sess.Username
		}
		renderHome(os.Stdout, username, app.ServerURL())

		return nil
	},
}
