package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"housing/internal/domain/credential"
)

var stdin = bufio.NewReader(os.Stdin)

// Line печатает подпись и читает строку со stdin
func Line(label string) (string, error) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Password читает пароль без эха, если stdin - терминал
func Password(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return Line(label)
	}

	fmt.Print(label)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

// Outcome печатает сообщение формы: зеленым при успехе, красным при ошибке
func Outcome(w io.Writer, out credential.Outcome) {
	if out.IsSuccess() {
		fmt.Fprintln(w, color.GreenString("✅ %s", out.Message))
		return
	}
	fmt.Fprintln(w, color.RedString("❌ %s", out.Message))
}
