package cart

import "errors"

var (
	ErrItemNotFound     = errors.New("cart item not found")
	ErrNotCartOwner     = errors.New("cart item belongs to another user")
	ErrBookNotAvailable = errors.New("book is not available")
)
