package password

import "strings"

// Basic runs the five character checks.
// A too-short password is always weak, and strong requires every check.
type Basic struct{}

func (Basic) Name() string { return PolicyBasic }

func (Basic) Validate(password string) Result {
	checks := inspect(password)
	res := Result{Errors: []string{}}
	checks.apply(&res)
	res.IsValid = len(res.Errors) == 0

	switch {
	case !checks.length:
		res.Strength = StrengthWeak
	case res.Score >= 4 && res.IsValid:
		res.Strength = StrengthStrong
	case res.Score >= 2:
		res.Strength = StrengthMedium
	default:
		res.Strength = StrengthWeak
	}
	return res
}

// Strict adds a long-password bonus and rejects common patterns.
type Strict struct{}

func (Strict) Name() string { return PolicyStrict }

func (Strict) Validate(password string) Result {
	res := Result{Errors: []string{}}
	inspect(password).apply(&res)
	if len([]rune(password)) >= strictLongBonus {
		res.Score++
	}

	if hasRepeatedRun(password, 3) {
		res.Errors = append(res.Errors, MsgRepeated)
	}
	if hasSequentialRun(password, 3) {
		res.Errors = append(res.Errors, MsgSequential)
	}
	if isCommonPassword(password) {
		res.Errors = append(res.Errors, MsgCommonlyUsed)
	}
	res.IsValid = len(res.Errors) == 0

	switch {
	case res.Score >= 5 && res.IsValid:
		res.Strength = StrengthStrong
	case res.Score >= 3:
		res.Strength = StrengthMedium
	default:
		res.Strength = StrengthWeak
	}
	return res
}

func hasRepeatedRun(password string, n int) bool {
	run := 1
	var prev rune
	for i, r := range []rune(password) {
		if i > 0 && r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// hasSequentialRun finds n consecutive digits or letters stepping by +1 or -1,
// e.g. "123", "cba". Letter case is ignored.
func hasSequentialRun(password string, n int) bool {
	runes := []rune(strings.ToLower(password))
	up, down := 1, 1
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		if !sameClass(prev, cur) {
			up, down = 1, 1
			continue
		}
		if cur == prev+1 {
			up++
		} else {
			up = 1
		}
		if cur == prev-1 {
			down++
		} else {
			down = 1
		}
		if up >= n || down >= n {
			return true
		}
	}
	return false
}

func sameClass(a, b rune) bool {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	isLetter := func(r rune) bool { return r >= 'a' && r <= 'z' }
	return (isDigit(a) && isDigit(b)) || (isLetter(a) && isLetter(b))
}

var commonPasswords = map[string]struct{}{
	"password":     {},
	"password1":    {},
	"password123":  {},
	"password123!": {},
	"passw0rd":     {},
	"p@ssw0rd":     {},
	"p@ssword1":    {},
	"123456":       {},
	"12345678":     {},
	"123456789":    {},
	"qwerty":       {},
	"qwerty123":    {},
	"qwerty123!":   {},
	"letmein":      {},
	"letmein1!":    {},
	"welcome1":     {},
	"welcome123!":  {},
	"admin123":     {},
	"admin@123":    {},
	"iloveyou":     {},
	"football":     {},
	"football1!":   {},
	"monkey123":    {},
	"dragon123":    {},
	"sunshine1":    {},
	"trustno1":     {},
}

func isCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]
	return ok
}
