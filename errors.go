package imei

import "errors"

var (
	ErrTooShort         = errors.New("imei is shorter than 15 digits")
	ErrTooLong          = errors.New("imei is longer than 15 digits")
	ErrInvalidCharacter = errors.New("imei contains a non-digit character")
	ErrChecksum         = errors.New("imei check digit does not match")
)
