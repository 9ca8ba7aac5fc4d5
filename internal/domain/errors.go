package domain

import "errors"

var (
	ErrInvalidVariant       = errors.New("requested variant has no price entry")
	ErrUnknownProduct       = errors.New("unknown product")
	ErrUnknownTopping       = errors.New("unknown topping")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrConfigurableProduct  = errors.New("product requires configuration before adding")
	ErrNotConfigurable      = errors.New("product does not support configuration")
	ErrConfirmationRequired = errors.New("destructive reset requires explicit confirmation")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrLocked               = errors.New("system is emergency locked")
	ErrInvalidUnlockCode    = errors.New("invalid unlock code")
	ErrUnknownCustomer      = errors.New("unknown customer")
	ErrUnknownEmployee      = errors.New("unknown employee")
	ErrUnknownInventoryItem = errors.New("unknown inventory item")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrExpenseTitleRequired = errors.New("expense title is required")
)
