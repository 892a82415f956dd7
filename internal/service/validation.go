package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidEmail  = "invalid email"
	msgURLPrefix     = "URL must start with http:// or https://"
	msgVideoPrefix   = "Video URL must start with http:// or https://"
	msgNegativeOrder = "Ensure this value is greater than or equal to 0."
)

var emailValidator = validator.New()

// ValidEmail reports whether value is an address of the form local@domain
// with no whitespace and a dot in the domain.
func ValidEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(value, "@")
	if at <= 0 || !strings.Contains(value[at+1:], ".") {
		return false
	}
	return emailValidator.Var(value, "required,email") == nil
}

// HasHTTPPrefix reports whether value starts with http:// or https://.
func HasHTTPPrefix(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

func requiredMessage(field string) string {
	return field + " is required"
}

func maxLengthMessage(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

func nullMessage(field string) string {
	return field + " may not be null"
}

// textRule describes how a string field is normalized and checked.
type textRule struct {
	required  bool
	max       int
	normalize func(string) string
	validate  func(string) string
}

var (
	lowerRule = func(s string) string { return strings.ToLower(s) }

	emailRule = func(s string) string {
		if s != "" && !ValidEmail(s) {
			return msgInvalidEmail
		}
		return ""
	}

	urlRule = func(s string) string {
		if s != "" && !HasHTTPPrefix(s) {
			return msgURLPrefix
		}
		return ""
	}
)

func slugRule(required bool) textRule {
	return textRule{required: required, max: maxSlugLength, normalize: Slugify}
}

// binder copies decoded payload fields onto a record, collecting field errors.
// Fields absent from the payload are left untouched; required fields must be
// present unless the bind is partial.
type binder struct {
	errs    FieldErrors
	partial bool
}

func newBinder(partial bool) *binder {
	return &binder{errs: FieldErrors{}, partial: partial}
}

func (b *binder) missing(field string, in interface{ present() bool }, required bool) bool {
	if in.present() {
		return false
	}
	if required && !b.partial {
		b.errs.Add(field, requiredMessage(field))
	}
	return true
}

func (b *binder) text(field string, in Optional[string], dst *string, rule textRule) {
	if b.missing(field, in, rule.required) {
		return
	}
	if in.Null {
		if rule.required {
			b.errs.Add(field, requiredMessage(field))
			return
		}
		*dst = ""
		return
	}

	value := strings.TrimSpace(in.Value)
	if rule.normalize != nil {
		value = rule.normalize(value)
	}
	if value == "" && rule.required {
		b.errs.Add(field, requiredMessage(field))
		return
	}
	if rule.max > 0 && utf8.RuneCountInString(value) > rule.max {
		b.errs.Add(field, maxLengthMessage(rule.max))
		return
	}
	if rule.validate != nil {
		if msg := rule.validate(value); msg != "" {
			b.errs.Add(field, msg)
			return
		}
	}
	*dst = value
}

func (b *binder) flag(field string, in Optional[bool], dst *bool) {
	if b.missing(field, in, false) {
		return
	}
	if in.Null {
		b.errs.Add(field, nullMessage(field))
		return
	}
	*dst = in.Value
}

func (b *binder) order(field string, in Optional[int], dst *int) {
	if b.missing(field, in, false) {
		return
	}
	if in.Null {
		b.errs.Add(field, nullMessage(field))
		return
	}
	if in.Value < 0 {
		b.errs.Add(field, msgNegativeOrder)
		return
	}
	*dst = in.Value
}

func (b *binder) timestamp(field string, in Optional[time.Time], dst *time.Time) {
	if b.missing(field, in, true) {
		return
	}
	if in.Null || in.Value.IsZero() {
		b.errs.Add(field, requiredMessage(field))
		return
	}
	*dst = in.Value
}

func (b *binder) nullableTime(field string, in Optional[time.Time], dst **time.Time) {
	if b.missing(field, in, false) {
		return
	}
	if in.Null {
		*dst = nil
		return
	}
	value := in.Value
	*dst = &value
}
