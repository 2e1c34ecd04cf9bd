package checkout

import "errors"

var (
	// ErrEmptyCart rejects a checkout before any writes happen.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotFound covers unknown sessions, orders and products.
	ErrNotFound = errors.New("not found")

	// ErrGateway wraps failures talking to the payment provider. An order
	// created before the gateway call stays pending and sessionless; the
	// caller may simply retry checkout.
	ErrGateway = errors.New("payment gateway error")
)
