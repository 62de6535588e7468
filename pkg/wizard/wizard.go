// Package wizard runs the interactive intake interview and produces the raw
// answer record consumed by the generation pipeline.
package wizard

import (
	"context"
	"errors"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/validation"
)

var caseTypes = []string{
	"Simple or joint divorce",
	"Separation with other issues",
	"Child Support",
	"Spousal Support",
	"Property Division",
}

var reliefOptions = []string{"support", "property", "pension", "parenting", "divorce"}

// Option customises a Wizard.
type Option func(*Wizard)

// WithDriver replaces the terminal driver. Tests use a scripted driver.
func WithDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithEngine replaces the validation engine backing inline answer checks.
func WithEngine(engine *validation.Engine) Option {
	return func(w *Wizard) {
		if engine != nil {
			w.engine = engine
		}
	}
}

// Wizard walks the user through the intake questions, validating answers
// inline so mistakes are corrected at the prompt instead of after submission.
type Wizard struct {
	driver PromptDriver
	engine *validation.Engine
}

// New builds a Wizard applying any provided options.
func New(options ...Option) *Wizard {
	w := &Wizard{
		driver: newSurveyDriver(),
		engine: validation.NewEngine(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Run conducts the interview and returns the answer record. The record uses
// the wizard's raw key names; the transformer normalizes them later.
func (w *Wizard) Run(ctx context.Context) (answers.Record, error) {
	record := answers.Record{"legalCategory": "Family Law"}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "What type of application are you filing?",
		Options: caseTypes,
	})
	if err != nil {
		return nil, err
	}
	record["caseType"] = caseTypes[idx]

	personal, err := w.personalInfo(ctx)
	if err != nil {
		return nil, err
	}
	record["personalInfo"] = personal

	joint, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Are you filing jointly with the other party?",
	})
	if err != nil {
		return nil, err
	}
	record["isJointApplication"] = joint

	if !joint {
		respondent, err := w.respondentInfo(ctx)
		if err != nil {
			return nil, err
		}
		if respondent != nil {
			record["respondentInfo"] = respondent
		}
	}

	marriage, err := w.marriageInfo(ctx)
	if err != nil {
		return nil, err
	}
	record["marriageInfo"] = marriage

	children, err := w.children(ctx)
	if err != nil {
		return nil, err
	}
	if len(children) > 0 {
		record["childrenInfo"] = children
	}

	relief, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message: "What are you asking the court for?",
		Options: reliefOptions,
	})
	if err != nil {
		return nil, err
	}
	if len(relief) > 0 {
		selected := make([]string, 0, len(relief))
		for _, i := range relief {
			selected = append(selected, reliefOptions[i])
		}
		record["reliefSought"] = selected
	}

	international, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Does this case involve another country (property, residence, or prior orders abroad)?",
	})
	if err != nil {
		return nil, err
	}
	record["internationalElements"] = international

	description, err := w.driver.TextArea(ctx, TextAreaConfig{
		Message: "Briefly describe your situation",
		Help:    "Between 50 and 1000 characters if provided",
	})
	if err != nil {
		return nil, err
	}
	if description != "" {
		record["caseDescription"] = description
	}

	return record, nil
}

func (w *Wizard) personalInfo(ctx context.Context) (map[string]any, error) {
	fullName, err := w.driver.Input(ctx, InputConfig{
		Message:   "Your full legal name",
		Validator: w.check("fullName", validation.Rules{Required: true, MinLength: 2}),
	})
	if err != nil {
		return nil, err
	}
	email, err := w.driver.Input(ctx, InputConfig{
		Message:   "Email address",
		Validator: w.check("email", validation.Rules{Required: true, Kind: validation.KindEmail}),
	})
	if err != nil {
		return nil, err
	}
	phone, err := w.driver.Input(ctx, InputConfig{
		Message:   "Phone number",
		Validator: w.check("phone", validation.Rules{Required: true, Kind: validation.KindPhone}),
	})
	if err != nil {
		return nil, err
	}
	dateOfBirth, err := w.driver.Input(ctx, InputConfig{
		Message:   "Date of birth (YYYY-MM-DD)",
		Validator: w.check("dateOfBirth", validation.Rules{Kind: validation.KindDate, MinAge: 18}),
	})
	if err != nil {
		return nil, err
	}

	address, err := w.address(ctx)
	if err != nil {
		return nil, err
	}

	info := map[string]any{
		"fullName": fullName,
		"contact": map[string]any{
			"email": email,
			"phone": phone,
		},
	}
	if dateOfBirth != "" {
		info["dateOfBirth"] = dateOfBirth
	}
	if address != nil {
		info["address"] = address
	}
	return info, nil
}

func (w *Wizard) address(ctx context.Context) (map[string]any, error) {
	street, err := w.driver.Input(ctx, InputConfig{Message: "Street address"})
	if err != nil {
		return nil, err
	}
	city, err := w.driver.Input(ctx, InputConfig{Message: "City"})
	if err != nil {
		return nil, err
	}
	province, err := w.driver.Input(ctx, InputConfig{Message: "Province", Default: "New Brunswick"})
	if err != nil {
		return nil, err
	}
	postal, err := w.driver.Input(ctx, InputConfig{
		Message:   "Postal code",
		Validator: w.check("postalCode", validation.Rules{Kind: validation.KindPostalCode}),
	})
	if err != nil {
		return nil, err
	}

	if street == "" && city == "" && postal == "" {
		return nil, nil
	}
	return map[string]any{
		"street":  street,
		"city":    city,
		"state":   province,
		"zipCode": postal,
	}, nil
}

func (w *Wizard) respondentInfo(ctx context.Context) (map[string]any, error) {
	name, err := w.driver.Input(ctx, InputConfig{
		Message: "Full legal name of the other party (leave blank if unknown)",
	})
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	return map[string]any{"fullName": name}, nil
}

func (w *Wizard) marriageInfo(ctx context.Context) (map[string]any, error) {
	date, err := w.driver.Input(ctx, InputConfig{
		Message:   "Date of marriage (YYYY-MM-DD)",
		Validator: w.check("marriageDate", validation.Rules{Kind: validation.KindDate}),
	})
	if err != nil {
		return nil, err
	}
	separation, err := w.driver.Input(ctx, InputConfig{
		Message: "Date of separation (YYYY-MM-DD)",
		Validator: w.check("separationDate", validation.Rules{
			Kind:    validation.KindDate,
			MinDate: validation.DateBound{Date: date},
		}),
	})
	if err != nil {
		return nil, err
	}
	commonLaw, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Is this a common-law relationship?",
	})
	if err != nil {
		return nil, err
	}

	info := map[string]any{"isCommonLaw": commonLaw}
	if date != "" {
		info["date"] = date
	}
	if separation != "" {
		info["separationDate"] = separation
	}
	return info, nil
}

func (w *Wizard) children(ctx context.Context) ([]any, error) {
	var out []any
	for {
		message := "Are there children of the relationship?"
		if len(out) > 0 {
			message = "Add another child?"
		}
		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}

		name, err := w.driver.Input(ctx, InputConfig{
			Message:   "Child's full name",
			Validator: w.check("childName", validation.Rules{Required: true}),
		})
		if err != nil {
			return nil, err
		}
		dateOfBirth, err := w.driver.Input(ctx, InputConfig{
			Message:   "Child's date of birth (YYYY-MM-DD)",
			Validator: w.check("childDateOfBirth", validation.Rules{Kind: validation.KindDate}),
		})
		if err != nil {
			return nil, err
		}
		residingWith, err := w.driver.Input(ctx, InputConfig{Message: "Who does the child live with?"})
		if err != nil {
			return nil, err
		}

		child := map[string]any{"name": name}
		if dateOfBirth != "" {
			child["dateOfBirth"] = dateOfBirth
		}
		if residingWith != "" {
			child["residingWith"] = residingWith
		}
		out = append(out, child)
	}
}

// check adapts a validation rule into a prompt validator so the engine's
// localized messages show up inline.
func (w *Wizard) check(path string, rules validation.Rules) func(string) error {
	return func(value string) error {
		result := w.engine.ValidateField(path, value, rules, nil)
		if !result.Valid {
			return errors.New(result.Message)
		}
		return nil
	}
}
