package helpers

import (
	"strings"
)

// IsPortugueseNIFValid checks if the provided string is a valid Portuguese
// tax identification number (NIF). It verifies:
// 1. The number is exactly 9 digits
// 2. The check digit (last digit) satisfies the mod-11 rule
func IsPortugueseNIFValid(nif string) bool {
	if len(nif) != 9 {
		return false
	}

	sum := 0
	for i, c := range nif {
		if c < '0' || c > '9' {
			return false
		}
		if i < 8 {
			sum += int(c-'0') * (9 - i)
		}
	}

	check := 11 - (sum % 11)
	if check >= 10 {
		check = 0
	}
	return int(nif[8]-'0') == check
}

// IsSpanishNIFValid checks if the provided string is a valid Spanish DNI or
// NIE. It verifies:
// 1. The format is 8 digits plus a control letter (DNI), or X/Y/Z plus
//    7 digits plus a control letter (NIE)
// 2. The control letter matches the mod-23 table
func IsSpanishNIFValid(nif string) bool {
	nif = strings.ToUpper(nif)
	if len(nif) != 9 {
		return false
	}

	const letters = "TRWAGMYFPDXBNJZSQVHLCKE"

	number := nif[:8]
	switch nif[0] {
	case 'X':
		number = "0" + nif[1:8]
	case 'Y':
		number = "1" + nif[1:8]
	case 'Z':
		number = "2" + nif[1:8]
	}

	n := 0
	for _, c := range number {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}

	return nif[8] == letters[n%23]
}

// IsPostalCodeValid checks a postal code against the country's format.
// Portugal uses NNNN-NNN, Spain uses NNNNN. Unknown countries accept any
// non-empty value.
func IsPostalCodeValid(country, code string) bool {
	switch strings.ToUpper(country) {
	case "PT":
		if len(code) != 8 || code[4] != '-' {
			return false
		}
		for i, c := range code {
			if i == 4 {
				continue
			}
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	case "ES":
		if len(code) != 5 {
			return false
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	default:
		return code != ""
	}
}
