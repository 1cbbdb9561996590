package errors

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrDiscountNotFound = errors.New("discount code not found")
	ErrGuestNotFound    = errors.New("guest session not found")
	ErrCartNotFound     = errors.New("guest cart not found")
	ErrAddressNotFound  = errors.New("address not found")
)
