package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"storefront/internal/commerce"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/email"
)

func validatePassword(field, password string) error {
	if !govalidator.StringLength(password, "8", "128") {
		return dErrors.New(dErrors.CodeValidation, field+" must be between 8 and 128 characters")
	}
	return nil
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (r *LoginRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "a valid email is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

type RegisterRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "a valid email is required")
	}
	if r.FirstName == "" && r.LastName == "" {
		r.FirstName, r.LastName = email.DeriveName(r.Email)
	}
	if !govalidator.StringLength(r.FirstName, "1", "100") || !govalidator.StringLength(r.LastName, "0", "100") {
		return dErrors.New(dErrors.CodeValidation, "first_name is required and names must be at most 100 characters")
	}
	return validatePassword("password", r.Password)
}

func (r RegisterRequest) Input() commerce.RegisterInput {
	return commerce.RegisterInput{
		EmailAddress: r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PhoneNumber:  r.PhoneNumber,
		Password:     r.Password,
	}
}

type VerifyRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r *VerifyRequest) Validate() error {
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		return dErrors.New(dErrors.CodeValidation, "token is required")
	}
	if r.Password != "" {
		return validatePassword("password", r.Password)
	}
	return nil
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

func (r *PasswordResetRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	if !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "a valid email is required")
	}
	return nil
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r *PasswordResetConfirmRequest) Validate() error {
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		return dErrors.New(dErrors.CodeValidation, "token is required")
	}
	return validatePassword("password", r.Password)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "current_password is required")
	}
	return validatePassword("new_password", r.NewPassword)
}
