package core

// validation.go provides field-level validation for candidate records.
//
// Every rule is evaluated independently and all applicable errors are
// collected, so the form can show one message next to each offending input.
// Within a single field the checks are mutually exclusive: the first failing
// branch wins (required-ness before character class before length).

import (
	"regexp"
	"strings"
)

// FieldErrors maps a field name to its validation message.
// A candidate is acceptable iff the map is empty.
type FieldErrors map[string]string

// OK reports whether validation passed.
func (e FieldErrors) OK() bool { return len(e) == 0 }

var (
	// Letters, spaces, hyphens, and apostrophes. Applied to the trimmed value.
	namePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

	// Loose "something@something.something" match, not full RFC validation.
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

	// Digits only, at least seven of them.
	phonePattern = regexp.MustCompile(`^\d{7,}$`)
)

const maxNameLength = 30

// fieldRule pairs a field name with its validator. Keeping an explicit table
// avoids stringly-typed field lookups and fixes the evaluation order.
type fieldRule struct {
	field string
	check func(Record) string
}

var fieldRules = []fieldRule{
	{"name", checkName},
	{"email", checkEmail},
	{"phone", checkPhone},
	{"city", func(r Record) string { return checkOptionalPlace("City", r.City) }},
	{"district", func(r Record) string { return checkOptionalPlace("District", r.District) }},
}

// Validate checks a candidate record against the per-field rules.
// It is pure and deterministic; the returned map is never nil.
func Validate(rec Record) FieldErrors {
	errs := FieldErrors{}
	for _, rule := range fieldRules {
		if msg := rule.check(rec); msg != "" {
			errs[rule.field] = msg
		}
	}
	return errs
}

// ValidateCreate runs Validate plus the create-path-only profile picture
// rule. pictureType is the declared media type of the uploaded picture, or
// empty when no picture was provided.
func ValidateCreate(rec Record, pictureType string) FieldErrors {
	errs := Validate(rec)
	if pictureType != "" && pictureType != PNGMediaType {
		errs["profilePicture"] = "Only PNG images are allowed"
	}
	return errs
}

func checkName(r Record) string {
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		return "Name is required"
	case !namePattern.MatchString(name):
		return "Name can only contain alphabets, spaces, hyphens, and apostrophes"
	case len(name) > maxNameLength:
		return "Name cannot exceed 30 characters"
	}
	return ""
}

func checkEmail(r Record) string {
	switch {
	case r.Email == "":
		return "Email is required"
	case !emailPattern.MatchString(r.Email):
		return "Email address is invalid"
	}
	return ""
}

func checkPhone(r Record) string {
	switch {
	case r.Phone == "":
		return "Phone number is required"
	case !phonePattern.MatchString(r.Phone):
		return "Phone number must be at least 7 digits"
	}
	return ""
}

// checkOptionalPlace validates city and district, which are optional but
// follow the same character-class and length rules as name when present.
func checkOptionalPlace(label, value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ""
	case !namePattern.MatchString(value):
		return label + " can only contain alphabets, spaces, hyphens, and apostrophes"
	case len(value) > maxNameLength:
		return label + " cannot exceed 30 characters"
	}
	return ""
}
