package auth

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

// guessFullNameFromEmail deriva un nombre visible desde la parte local del
// email: separa por «.», «_» y «-» y capitaliza cada token.
// "juan.perez@x.com" → "Juan Perez".
func guessFullNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return email
	}
	titler := cases.Title(language.Spanish)
	for i, p := range parts {
		parts[i] = titler.String(strings.ToLower(p))
	}
	return strings.Join(parts, " ")
}

// ensureFullName completa FullName cuando falta, a partir del email o, en su
// defecto, del username. Devuelve true si hubo cambio.
func ensureFullName(user *entity.User) bool {
	if strings.TrimSpace(user.FullName) != "" {
		return false
	}
	if user.Email != "" {
		user.FullName = guessFullNameFromEmail(user.Email)
	} else {
		user.FullName = user.Username
	}
	return user.FullName != ""
}
