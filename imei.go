// Package imei validates International Mobile Equipment Identity numbers.
//
// An IMEI is exactly 15 ASCII digits. The 15th digit is a Luhn check
// digit computed over the preceding 14.
package imei

// Length is the number of digits in an IMEI.
const Length = 15

// precalculated double-and-reduce values so the hot loop never
// multiplies or branches on the reduce step
var doubled = [10]int{0, 2, 4, 6, 8, 1, 3, 5, 7, 9}

// Valid reports whether number is a well-formed IMEI with a correct
// check digit. Malformed input returns false, never an error.
func Valid(number string) bool {
	if len(number) != Length {
		return false
	}

	sum := 0
	for i := 0; i < Length; i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		// every second digit counting from the one before the check
		// digit is doubled; the check digit itself stays raw
		if i%2 == 1 {
			d = doubled[d]
		}
		sum += d
	}

	return sum%10 == 0
}

// Check validates number the same way Valid does and reports why
// validation failed. A nil error means Valid would return true.
func Check(number string) error {
	if len(number) < Length {
		return ErrTooShort
	}
	if len(number) > Length {
		return ErrTooLong
	}

	sum := 0
	for i := 0; i < Length; i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return ErrInvalidCharacter
		}

		d := int(c - '0')
		if i%2 == 1 {
			d = doubled[d]
		}
		sum += d
	}

	if sum%10 != 0 {
		return ErrChecksum
	}

	return nil
}
