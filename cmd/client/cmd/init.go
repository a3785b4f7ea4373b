// cmd/client/cmd/init.go
package cmd

import (
	"housing/cmd/client/cmd/auth"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.SignupCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(homeCmd)
}
