package usecase

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSubmission checks a compose submission for user-correctable
// problems. It returns a field -> message-ID map; an empty map means the
// submission is acceptable.
func ValidateSubmission(req SubmitRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if len(req.IncludedRecipientKeys) == 0 {
		fieldErrors["included_recipient_keys"] = "compose_missing_recipients"
	}

	for _, token := range SplitAdditionalEmails(req.AdditionalEmails) {
		if err := validate.Var(token, "email"); err != nil {
			fieldErrors["additional_emails"] = "compose_invalid_additional_emails"
			break
		}
	}

	return fieldErrors
}

// SplitAdditionalEmails tokenizes the raw comma-separated additional-emails
// input. All whitespace is stripped first, so "a@b.com, c@d.com" and
// "a@b.com,c@d.com" tokenize identically; empty tokens are dropped.
func SplitAdditionalEmails(raw string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if stripped == "" {
		return nil
	}

	tokens := make([]string, 0)
	for _, token := range strings.Split(stripped, ",") {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
