package entities

// Principal уже аутентифицированный вызывающий; сервис проверяет
// только роль и принадлежность доставки.
type Principal struct {
	AgentID int64
	Role    PrincipalRole
}

type PrincipalRole string

const (
	RoleAgent    PrincipalRole = "agent"
	RoleConsumer PrincipalRole = "consumer"
	RoleAdmin    PrincipalRole = "admin"
)

func (r PrincipalRole) String() string {
	return string(r)
}
