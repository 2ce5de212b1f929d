package auth

import (
	"errors"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

// ErrUnknownOperator is returned when a login name is not in the directory.
var ErrUnknownOperator = errors.New("unknown operator")

// operators is the fixed login directory. Roles grant the same store access.
var operators = []models.Operator{
	{Username: "admin", Role: models.RoleAdmin},
	{Username: "empleado", Role: models.RoleEmployee},
	{Username: "contador", Role: models.RoleAccountant},
}

// Operators returns the login directory.
func Operators() []models.Operator {
	out := make([]models.Operator, len(operators))
	copy(out, operators)
	return out
}

// ResolveOperator maps a login name to its operator entry.
func ResolveOperator(username string) (models.Operator, error) {
	for _, op := range operators {
		if op.Username == username {
			return op, nil
		}
	}
	return models.Operator{}, ErrUnknownOperator
}

// ValidRole reports whether role is one of the fixed roles.
func ValidRole(role models.Role) bool {
	for _, op := range operators {
		if op.Role == role {
			return true
		}
	}
	return false
}
