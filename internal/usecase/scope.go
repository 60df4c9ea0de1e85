package usecase

import "github.com/google/uuid"

// Scope describes whose bookings an operation may see.
type Scope struct {
	ActorID    uuid.UUID
	Privileged bool
	// AllowPrivileged lets a privileged actor see every user's bookings.
	AllowPrivileged bool
}

// OwnScope never widens, even for superusers.
func OwnScope(actorID uuid.UUID, privileged bool) Scope {
	return Scope{ActorID: actorID, Privileged: privileged}
}

// WideScope widens to all bookings when the actor is privileged.
func WideScope(actorID uuid.UUID, privileged bool) Scope {
	return Scope{ActorID: actorID, Privileged: privileged, AllowPrivileged: true}
}

// OwnerFilter returns the user id lookups must be restricted to, or nil
// when the scope covers every booking.
func (s Scope) OwnerFilter() *uuid.UUID {
	if s.Privileged && s.AllowPrivileged {
		return nil
	}
	id := s.ActorID
	return &id
}
