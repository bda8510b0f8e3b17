package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUnauthenticated    = errors.New("error.unauthenticated")
	ErrForbidden          = errors.New("error.forbidden")
	ErrNotFound           = errors.New("error.not_found")
	ErrConflict           = errors.New("error.conflict")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")

	// ErrSelfManagement: um admin não pode alterar nem remover o próprio
	// registro pela gestão de usuários (evita lockout de privilégio)
	ErrSelfManagement = errors.New("error.admin_self_management")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidRole  = errors.New("error.invalid_role")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ValidationError descreve a violação de um campo específico
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors agrega violações de campo de uma mesma requisição
type ValidationErrors struct {
	Fields []ValidationError
}

func (e *ValidationErrors) Error() string {
	return "error.validation"
}
