package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"housing/cmd/client/cmd/types"
	"housing/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Удаляет локально сохраненную сессию для текущего сервера.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			if errors.Is(err, client.ErrNoSession) {
				fmt.Println("Вы не вошли в систему.")
				return nil
			}
			return err
		}

		fmt.Println("✓ Сессия удалена")
		return nil
	},
}
