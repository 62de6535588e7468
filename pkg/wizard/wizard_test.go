package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
	"github.com/goliatone/go-courtforms/pkg/validation"
)

// scriptedDriver replays canned responses in call order.
type scriptedDriver struct {
	inputs    []string
	confirms  []bool
	selects   []int
	multis    [][]int
	textAreas []string
	failWith  error
}

func (d *scriptedDriver) pop(t *[]string) string {
	if len(*t) == 0 {
		return ""
	}
	out := (*t)[0]
	*t = (*t)[1:]
	return out
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	value := d.pop(&d.inputs)
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(context.Context, SelectConfig) (int, error) {
	if d.failWith != nil {
		return 0, d.failWith
	}
	if len(d.selects) == 0 {
		return 0, nil
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, SelectConfig) ([]int, error) {
	if len(d.multis) == 0 {
		return nil, nil
	}
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func (d *scriptedDriver) TextArea(context.Context, TextAreaConfig) (string, error) {
	return d.pop(&d.textAreas), nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestRun_FullInterview(t *testing.T) {
	driver := &scriptedDriver{
		selects: []int{0}, // Simple or joint divorce
		inputs: []string{
			"Jane Doe", "j@example.com", "5065551234", "", // personal info
			"12 Elm St", "Saint John", "New Brunswick", "E2L 2E9", // address
			"John Doe",               // respondent
			"2010-01-01", "2022-06-01", // marriage
			"Sam Doe", "2015-05-05", "Applicant", // child
		},
		// joint? no; common law? no; child? yes; another? no; international? no
		confirms:  []bool{false, false, true, false, false},
		multis:    [][]int{{0}},
		textAreas: []string{strings.Repeat("We separated and need orders for our child. ", 2)},
	}

	record, err := New(WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := answers.String(record, "caseType"); got != "Simple or joint divorce" {
		t.Fatalf("unexpected case type %q", got)
	}
	if got := answers.String(record, "personalInfo.fullName"); got != "Jane Doe" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := answers.String(record, "personalInfo.address.zipCode"); got != "E2L 2E9" {
		t.Fatalf("unexpected postal code %q", got)
	}
	if got := answers.String(record, "respondentInfo.fullName"); got != "John Doe" {
		t.Fatalf("unexpected respondent %q", got)
	}
	if got := answers.Bool(record, "isJointApplication"); got {
		t.Fatalf("expected sole application")
	}
	if got := answers.Strings(record, "reliefSought"); len(got) != 1 || got[0] != "support" {
		t.Fatalf("unexpected relief %v", got)
	}
	if got := len(answers.List(record, "childrenInfo")); got != 1 {
		t.Fatalf("expected one child, got %d", got)
	}

	// The record feeds the transformer unchanged.
	file := casefile.Transform(record)
	if !file.Case.Circumstances.HasChildren {
		t.Fatalf("expected derived hasChildren flag")
	}
	if !file.Case.Circumstances.HasFinancialClaims {
		t.Fatalf("expected support relief to imply financial claims")
	}
}

func TestRun_SkipsEmptyBranches(t *testing.T) {
	driver := &scriptedDriver{
		selects: []int{2}, // Child Support
		inputs: []string{
			"Jane Doe", "j@example.com", "5065551234", "",
			"", "", "New Brunswick", "",
			"",             // unknown respondent
			"2010-01-01", "2022-06-01",
		},
		confirms: []bool{false, false, false, false},
	}

	record, err := New(WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, ok := record["respondentInfo"]; ok {
		t.Fatalf("expected no respondent branch")
	}
	if _, ok := record["childrenInfo"]; ok {
		t.Fatalf("expected no children branch")
	}
	if _, ok := record["personalInfo"].(map[string]any)["address"]; ok {
		t.Fatalf("expected no address branch")
	}
	if _, ok := record["caseDescription"]; ok {
		t.Fatalf("expected no description")
	}
}

func TestRun_PropagatesAbort(t *testing.T) {
	driver := &scriptedDriver{failWith: ErrAborted}
	_, err := New(WithDriver(driver)).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
}

func TestRun_InlineValidation(t *testing.T) {
	driver := &scriptedDriver{
		selects: []int{0},
		inputs:  []string{"Jane Doe", "not-an-email"},
	}
	_, err := New(WithDriver(driver)).Run(context.Background())
	if err == nil {
		t.Fatalf("expected validation error from email prompt")
	}
	if err.Error() != "Please enter a valid email address" {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestRun_FrenchValidationMessages(t *testing.T) {
	driver := &scriptedDriver{
		selects: []int{0},
		inputs:  []string{""},
	}
	wizard := New(
		WithDriver(driver),
		WithEngine(validation.NewEngine(validation.WithLocale("fr"))),
	)
	_, err := wizard.Run(context.Background())
	if err == nil || err.Error() != "Ce champ est obligatoire" {
		t.Fatalf("expected French required message, got %v", err)
	}
}
