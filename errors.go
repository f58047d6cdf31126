// errors.go

package main

import "errors"

var (
	ErrProductNotFound = errors.New("Product not found")
	ErrOrderNotFound   = errors.New("Order not found")
	ErrMissingFields   = errors.New("Missing required fields")
	ErrAlreadySeeded   = errors.New("Data already seeded")
	ErrInvalidStatus   = errors.New("Invalid order status")
)
