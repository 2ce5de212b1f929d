package models

// Role identifies which kind of operator is using the inventory.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
	RoleAccountant Role = "accountant"
)

// Operator is a person allowed past the login gate.
type Operator struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
