package password

import (
	"errors"
	"fmt"
	"strings"
)

// Strength grades a password independently of whether it is valid.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

const (
	PolicyBasic  = "basic"
	PolicyStrict = "strict"

	minLength       = 8
	strictLongBonus = 12

	// SpecialCharacters is the accepted special-character set.
	SpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

const (
	MsgTooShort     = "Password must be at least 8 characters long"
	MsgNoUppercase  = "Password must contain at least one uppercase letter"
	MsgNoLowercase  = "Password must contain at least one lowercase letter"
	MsgNoDigit      = "Password must contain at least one number"
	MsgNoSpecial    = "Password must contain at least one special character"
	MsgRepeated     = "Password must not repeat the same character three times in a row"
	MsgSequential   = "Password must not contain sequential characters like 123 or abc"
	MsgCommonlyUsed = "Password is too common"
)

var ErrUnknownPolicy = errors.New("unknown password policy")

// Result is computed fresh on every call.
type Result struct {
	IsValid  bool
	Strength Strength
	Errors   []string
	Score    int
}

// Policy validates passwords under one named rule set.
type Policy interface {
	Name() string
	Validate(password string) Result
}

// PolicyByName returns the basic or strict policy.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyBasic:
		return Basic{}, nil
	case PolicyStrict:
		return Strict{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
}

// Validate checks a password with the basic policy.
func Validate(password string) Result {
	return Basic{}.Validate(password)
}

type characterChecks struct {
	length  bool
	upper   bool
	lower   bool
	digit   bool
	special bool
}

func inspect(password string) characterChecks {
	out := characterChecks{length: len([]rune(password)) >= minLength}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			out.upper = true
		case r >= 'a' && r <= 'z':
			out.lower = true
		case r >= '0' && r <= '9':
			out.digit = true
		case strings.ContainsRune(SpecialCharacters, r):
			out.special = true
		}
	}
	return out
}

// apply scores the five character checks, appending a message per failure.
func (c characterChecks) apply(res *Result) {
	check := func(ok bool, msg string) {
		if ok {
			res.Score++
			return
		}
		res.Errors = append(res.Errors, msg)
	}
	check(c.length, MsgTooShort)
	check(c.upper, MsgNoUppercase)
	check(c.lower, MsgNoLowercase)
	check(c.digit, MsgNoDigit)
	check(c.special, MsgNoSpecial)
}
