package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"housing/cmd/client/cmd/types"
	"housing/internal/app/client"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Открыть домашний экран",
	Long:  `Домашний экран доступен после входа: housing auth login`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd.Context())
		if err != nil {
			return err
		}

		sess, err := app.CurrentSession()
		if errors.Is(err, client.ErrNoSession) {
			return fmt.Errorf("вы не вошли в систему. Выполните вход: housing auth login")
		}
		if err != nil {
			return err
		}

		renderHome(os.Stdout, sess.Username, app.ServerURL())
		return nil
	},
}

// renderHome - заглушка домашнего экрана
func renderHome(w io.Writer, username, server string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("=== Madison Housing Dataset ==="))
	fmt.Fprintln(w)
	if username != "" {
		fmt.Fprintf(w, "Добро пожаловать, %s!\n", username)
	}
	fmt.Fprintf(w, "Сервер: %s\n", server)
	fmt.Fprintln(w, "Раздел с данными пока в разработке.")
}
