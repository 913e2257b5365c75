package security

import (
	"slices"
	"strings"
	"unicode"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

// sensitiveWords mark a name as sensitive when they appear as a whole token.
var sensitiveWords = map[string]struct{}{
	"password":      {},
	"passphrase":    {},
	"secret":        {},
	"token":         {},
	"credential":    {},
	"credentials":   {},
	"authorization": {},
	"auth":          {},
	"key":           {},
	"pin":           {},
	"cvv":           {},
	"cvc":           {},
	"otp":           {},
	"ssn":           {},
}

// suffixWords also match at the end of a compound token ("newpassword",
// "accesstoken"). Short words are left out so "monkey" stays harmless.
var suffixWords = []string{"password", "passphrase", "secret", "token", "credential", "credentials"}

// compoundWords are single tokens that are sensitive as a whole.
var compoundWords = map[string]struct{}{
	"apikey":       {},
	"privatekey":   {},
	"cardnumber":   {},
	"passwordsalt": {},
}

// sensitivePairs are adjacent tokens that are only sensitive together.
var sensitivePairs = map[[2]string]struct{}{
	{"card", "number"}:    {},
	{"security", "code"}:  {},
	{"account", "number"}: {},
}

// DefaultSensitiveFields returns the canonical lowercase names recognized as
// sensitive, sorted.
func DefaultSensitiveFields() []string {
	names := make([]string, 0, len(sensitiveWords)+len(compoundWords)+len(sensitivePairs))

	for word := range sensitiveWords {
		names = append(names, word)
	}

	for word := range compoundWords {
		names = append(names, word)
	}

	for pair := range sensitivePairs {
		names = append(names, pair[0]+"_"+pair[1])
	}

	slices.Sort(names)

	return names
}

// IsSensitiveField reports whether a subject name looks like it holds a
// secret. Names are split into lowercase tokens on case changes and
// non-alphanumeric runes, so "userPassword", "API_KEY" and "refresh-token"
// all match while "author" and "monkey" do not.
func IsSensitiveField(fieldName string) bool {
	tokens := tokenize(fieldName)

	for i, token := range tokens {
		if _, ok := sensitiveWords[token]; ok {
			return true
		}

		if _, ok := compoundWords[token]; ok {
			return true
		}

		for _, word := range suffixWords {
			if strings.HasSuffix(token, word) {
				return true
			}
		}

		if i+1 < len(tokens) {
			if _, ok := sensitivePairs[[2]string{token, tokens[i+1]}]; ok {
				return true
			}
		}
	}

	return false
}

// RedactValue returns constant.RedactedValue when fieldName is sensitive and
// value otherwise.
func RedactValue(fieldName string, value any) any {
	if IsSensitiveField(fieldName) {
		return constant.RedactedValue
	}

	return value
}

func tokenize(fieldName string) []string {
	return strings.FieldsFunc(normalizeFieldName(fieldName), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalizeFieldName lowercases a name and inserts underscores at case
// boundaries: "sessionToken" -> "session_token", "APIKey" -> "api_key".
func normalizeFieldName(fieldName string) string {
	var b strings.Builder

	runes := []rune(fieldName)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
