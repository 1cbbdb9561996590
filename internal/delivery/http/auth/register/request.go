package register

import (
	"errors"

	"github.com/go-playground/validator/v10"

	registerService "github.com/shopworks/storefront/fulfillment_service/internal/services/auth/register"
)

var (
	errInvalidEmail  = errors.New("a valid email is required")
	errEmptyFullName = errors.New("fullName is required")
	errShortPassword = errors.New("password must be at least 8 characters")
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=8"`
	GuestID  string `json:"guestId"`
}

func (req *RegisterRequest) validate() error {
	if err := validate.Struct(req); err != nil {
		switch {
		case req.Email == "":
			return errInvalidEmail
		case req.FullName == "":
			return errEmptyFullName
		case req.Password != "" && len(req.Password) < 8:
			return errShortPassword
		default:
			return errInvalidEmail
		}
	}

	return nil
}

func (req *RegisterRequest) ToInput() registerService.Input {
	return registerService.Input{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		GuestID:  req.GuestID,
	}
}
