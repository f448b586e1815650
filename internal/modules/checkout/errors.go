package checkout

import "errors"

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrNotOrderOwner = errors.New("order belongs to another user")
)
