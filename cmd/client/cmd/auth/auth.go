package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для входа, регистрации и выхода
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Вход, регистрация, выход.`,
}
