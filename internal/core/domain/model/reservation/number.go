// Package reservation contains the NumberReservation aggregate and the
// document-number value helpers. A reservation is a provisional, uniquely
// held claim on a sequence number scoped by (company, order type, year);
// it is either confirmed onto an order exactly once or released back to
// the pool.
package reservation

import (
	"fmt"
	"regexp"
	"strconv"

	"procurement/internal/pkg/errs"
)

// Document numbers follow the fixed "YY/SSS" shape: a 2-digit year prefix,
// a slash, and a 3-digit zero-padded sequence, e.g. "25/052".
var fullNumberPattern = regexp.MustCompile(`^\d{2}/\d{3}$`)

const (
	// MinSequenceNumber is the lowest assignable sequence value.
	MinSequenceNumber = 0

	// MaxSequenceNumber is the highest sequence value representable in the
	// 3-digit format.
	MaxSequenceNumber = 999
)

// ValidateYearPrefix checks that the year prefix is exactly two digits.
func ValidateYearPrefix(yearPrefix string) error {
	if len(yearPrefix) != 2 {
		return errs.NewValueIsInvalidErrorWithCause("yearPrefix",
			fmt.Errorf("%q must be exactly 2 digits", yearPrefix))
	}
	for _, r := range yearPrefix {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("yearPrefix",
				fmt.Errorf("%q must be exactly 2 digits", yearPrefix))
		}
	}
	return nil
}

// ValidateSequenceNumber checks that the sequence fits the 3-digit format.
func ValidateSequenceNumber(sequenceNumber int) error {
	if sequenceNumber < MinSequenceNumber || sequenceNumber > MaxSequenceNumber {
		return errs.NewValueIsOutOfRangeError(
			"sequenceNumber", sequenceNumber, MinSequenceNumber, MaxSequenceNumber)
	}
	return nil
}

// FormatFullNumber renders a year prefix and sequence as "YY/SSS".
// FormatFullNumber and ParseFullNumber are exact inverses.
func FormatFullNumber(yearPrefix string, sequenceNumber int) (string, error) {
	if err := ValidateYearPrefix(yearPrefix); err != nil {
		return "", err
	}
	if err := ValidateSequenceNumber(sequenceNumber); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%03d", yearPrefix, sequenceNumber), nil
}

// ParseFullNumber splits a "YY/SSS" document number into its year prefix and
// sequence. It accepts exactly the strings ValidateFormat accepts.
func ParseFullNumber(fullNumber string) (yearPrefix string, sequenceNumber int, err error) {
	if err = ValidateFormat(fullNumber); err != nil {
		return "", 0, err
	}

	yearPrefix = fullNumber[:2]
	sequenceNumber, err = strconv.Atoi(fullNumber[3:])
	if err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("fullNumber", err)
	}
	return yearPrefix, sequenceNumber, nil
}

// ValidateFormat accepts only strings matching exactly `\d{2}/\d{3}`.
func ValidateFormat(fullNumber string) error {
	if !fullNumberPattern.MatchString(fullNumber) {
		return errs.NewValueIsInvalidErrorWithCause("fullNumber",
			fmt.Errorf("%q does not match the YY/SSS document number format", fullNumber))
	}
	return nil
}
