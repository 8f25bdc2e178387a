package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const MinLength = 8

var (
	ErrTooShort        = errors.New("This password is too short. It must contain at least 8 characters.")
	ErrEntirelyNumeric = errors.New("This password is entirely numeric.")
	ErrTooCommon       = errors.New("This password is too common.")
)

var common = map[string]struct{}{
	"password": {}, "password1": {}, "12345678": {}, "123456789": {}, "qwerty123": {},
	"iloveyou": {}, "welcome1": {}, "admin123": {}, "letmein1": {}, "11111111": {},
	"abc12345": {}, "changeme": {}, "logbook1": {},
}

// Validate applies the account password policy.
func Validate(pw string) error {
	if len([]rune(pw)) < MinLength {
		return ErrTooShort
	}
	if _, ok := common[strings.ToLower(pw)]; ok {
		return ErrTooCommon
	}
	numeric := true
	for _, r := range pw {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return ErrEntirelyNumeric
	}
	return nil
}

func Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Matches(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
