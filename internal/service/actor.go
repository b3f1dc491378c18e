package service

import "github.com/jpconwi/communitycare/internal/domain"

// Actor is the authenticated caller of an operation, carried explicitly into
// every service call rather than held in shared state.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }
