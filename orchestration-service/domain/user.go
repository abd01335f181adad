package domain

import "github.com/pkg/errors"

// RegisterUserRequest is forwarded to the user service
type RegisterUserRequest struct {
	Name     string `json:"nombre"`
	LastName string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"telefono,omitempty"`
}

func (r RegisterUserRequest) Validate() error {
	if r.Email == "" {
		return errors.Wrap(ErrInvalidRequest, "email is required")
	}
	if r.Password == "" {
		return errors.Wrap(ErrInvalidRequest, "password is required")
	}
	return nil
}

// User is the registered account returned by the user service
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}
