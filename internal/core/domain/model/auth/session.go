package auth

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through the NewSession constructor.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session identifies who is acting: the user, the role they act under, and
// the company whose data they operate on. It is passed explicitly into every
// workflow and reservation call rather than being read from ambient state,
// so callers and tests control it directly.
type Session struct {
	userID    kernel.UUID
	companyID kernel.UUID
	role      Role

	guard kernel.ConstructorGuard
}

// NewSession creates a validated Session for the given user, company, and role.
func NewSession(userID, companyID kernel.UUID, role Role) (Session, error) {
	session := Session{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setUserID(userID),
		session.setCompanyID(companyID),
		session.setRole(role),
	); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Validate ensures the session was created through NewSession.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// UserID returns the acting user's identifier.
func (s Session) UserID() kernel.UUID {
	return s.userID
}

// CompanyID returns the active company's identifier.
func (s Session) CompanyID() kernel.UUID {
	return s.companyID
}

// Role returns the role the user acts under.
func (s Session) Role() Role {
	return s.role
}

func (s *Session) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Session) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	s.companyID = companyID
	return nil
}

func (s *Session) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
