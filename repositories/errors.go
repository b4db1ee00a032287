package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound   = errors.New("menu not found")
	ErrMenuTooDeep    = errors.New("menu can only be nested one level below a root menu")
	ErrMenuCycle      = errors.New("menu cannot be its own ancestor")
	ErrLevelNotFound  = errors.New("user level not found")
	ErrLevelProtected = errors.New("user level is reserved and cannot be managed")
	ErrLevelInUse     = errors.New("cannot delete a user level that still has users")
)

// ValidationError menandai input mutasi yang tidak valid pada satu field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
