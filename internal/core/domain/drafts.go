package domain

import "fmt"

// FormKind - форма, черновик которой хранится в хранилище браузерной сессии
type FormKind string

const (
	FormListing FormKind = "listing"
	FormAgent   FormKind = "agent"
)

// ParseFormKind разбирает имя формы из URL.
func ParseFormKind(s string) (FormKind, error) {
	switch FormKind(s) {
	case FormListing, FormAgent:
		return FormKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown form %q", ErrInvalidInput, s)
}

// Draft - незавершенные значения полей формы
type Draft struct {
	Form   FormKind
	Values map[string]string
}
