package validation

import "unicode/utf8"

// passwordPolicy is the registration complexity rule: a length range and at
// least required of the character classes. Symbols are allowed but never
// count.
var passwordPolicy = struct {
	minLen   int
	maxLen   int
	required int
	classes  []func(r rune) bool
}{
	minLen:   8,
	maxLen:   50,
	required: 3,
	classes: []func(r rune) bool{
		func(r rune) bool { return r >= 'a' && r <= 'z' },
		func(r rune) bool { return r >= 'A' && r <= 'Z' },
		func(r rune) bool { return r >= '0' && r <= '9' },
	},
}

// CheckPassword reports whether p satisfies the password complexity rule.
func CheckPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < passwordPolicy.minLen || n > passwordPolicy.maxLen {
		return false
	}

	met := 0
	for _, match := range passwordPolicy.classes {
		for _, r := range p {
			if match(r) {
				met++
				break
			}
		}
	}
	return met >= passwordPolicy.required
}
