package entity

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleSales   = "Sales"
)

// User é somente leitura nesta camada; a tabela users é mantida fora daqui.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"` // Admin, Manager, Sales
	Avatar *string `json:"avatar"`
}

func (u User) EntityID() string { return u.ID }
