package entities

// Role representa o papel de um usuário no sistema.
// Um usuário tem exatamente um role por vez.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// CanPublish verifica se o role pode criar conteúdo (imóveis e posts do blog)
func (r Role) CanPublish() bool {
	return r == RoleAgent || r == RoleAdmin
}

// IsAdmin verifica se o role é administrador
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
