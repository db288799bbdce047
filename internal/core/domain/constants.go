package domain

import "errors"

var (
	ErrInvalidCode          = errors.New("invalid preview size code")
	ErrUnrepresentableValue = errors.New("preview size has no code")
	ErrAtLowerBound         = errors.New("preview size cannot be smaller than 10%")
	ErrAtUpperBound         = errors.New("preview size cannot be larger than 200%")
	ErrDecode               = errors.New("could not decode image")
	ErrScaleFailure         = errors.New("could not scale image")
)
