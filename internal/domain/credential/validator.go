package credential

import (
	"strings"
	"unicode/utf8"
)

const (
	minIdentifierLen = 6
	minDomainLen     = 4
)

// ValidateIdentifier - грубая проверка формата email перед отправкой формы.
// Не RFC: адрес с двумя '@' отклоняется, "a@b.co" проходит.
func ValidateIdentifier(identifier string) bool {
	if strings.Count(identifier, "@") != 1 {
		return false
	}

	if strings.HasPrefix(identifier, "@") || strings.HasSuffix(identifier, "@") {
		return false
	}

	_, domain, _ := strings.Cut(identifier, "@")
	if !strings.Contains(domain, ".") || utf8.RuneCountInString(domain) < minDomainLen {
		return false
	}

	return utf8.RuneCountInString(identifier) >= minIdentifierLen
}
