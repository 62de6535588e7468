package pipeline

import (
	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/validation"
)

// DefaultSchema is the field-level rule set applied to wizard submissions
// before generation. Most fields are optional at this layer; the form mapper
// enforces per-form required fields with its own error type.
func DefaultSchema() validation.Schema {
	return validation.Schema{
		"personalInfo.fullName": {
			Required:  true,
			MinLength: 2,
			MaxLength: 100,
		},
		"personalInfo.contact.email": {
			Required: true,
			Kind:     validation.KindEmail,
		},
		"personalInfo.contact.phone": {
			Required: true,
			Kind:     validation.KindPhone,
		},
		"personalInfo.contact.confirmEmail": {
			Kind:  validation.KindEmail,
			Match: "personalInfo.contact.email",
		},
		"personalInfo.address.zipCode": {
			Kind: validation.KindPostalCode,
		},
		"personalInfo.dateOfBirth": {
			Kind:   validation.KindDate,
			MinAge: 18,
		},
		"caseDescription": {
			MinLength: 50,
			MaxLength: 1000,
		},
		"marriageInfo.date": {
			Kind: validation.KindDate,
		},
		"marriageInfo.separationDate": {
			Kind: validation.KindDate,
			MinDate: validation.DateBound{Fn: func(record answers.Record) string {
				return answers.String(record, "marriageInfo.date")
			}},
		},
	}
}
