package casefile

import (
	"time"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

// Record renders the canonical case record as a dotted-path-addressable
// mapping. The result passes through the clean pass, so no branch holds a nil
// value or an empty container; path resolvers see Missing for pruned branches.
func (f *File) Record() answers.Record {
	if f == nil {
		return answers.Record{}
	}
	record := answers.Record{
		"metadata": map[string]any{
			"submissionDate": f.Metadata.SubmissionDate.Format(time.RFC3339),
			"province":       f.Metadata.Province,
			"legalCategory":  f.Metadata.LegalCategory,
			"caseType":       f.Metadata.CaseType,
			"version":        f.Metadata.Version,
		},
		"parties": map[string]any{
			"applicant":  partyRecord(f.Parties.Applicant),
			"respondent": partyRecord(f.Parties.Respondent),
		},
		"case": map[string]any{
			"description": f.Case.Description,
			"circumstances": map[string]any{
				"hasChildren":           f.Case.Circumstances.HasChildren,
				"hasFinancialClaims":    f.Case.Circumstances.HasFinancialClaims,
				"isJointApplication":    f.Case.Circumstances.IsJointApplication,
				"hasPropertyClaims":     f.Case.Circumstances.HasPropertyClaims,
				"hasDomesticViolence":   f.Case.Circumstances.HasDomesticViolence,
				"requiresUrgentRelief":  f.Case.Circumstances.RequiresUrgentRelief,
				"internationalElements": f.Case.Circumstances.InternationalElements,
			},
			"reliefSought": stringList(f.Case.ReliefSought),
		},
		"relationships": map[string]any{
			"marriageInfo": marriageRecord(f.Relationships.Marriage),
			"children":     childRecords(f.Relationships.Children),
		},
		"financials": financialsRecord(f.Financials),
	}
	return answers.Clean(record)
}

func partyRecord(p *Party) map[string]any {
	if p == nil {
		return nil
	}
	record := map[string]any{
		"fullName":      p.FullName,
		"dateOfBirth":   p.DateOfBirth,
		"gender":        p.Gender,
		"maritalStatus": p.MaritalStatus,
		"contact": map[string]any{
			"email":          p.Contact.Email,
			"phone":          p.Contact.Phone,
			"alternatePhone": p.Contact.AlternatePhone,
		},
		"address": map[string]any{
			"street":     p.Address.Street,
			"city":       p.Address.City,
			"province":   p.Address.Province,
			"postalCode": p.Address.PostalCode,
			"country":    p.Address.Country,
		},
		"employment": map[string]any{
			"status":     p.Employment.Status,
			"occupation": p.Employment.Occupation,
			"employer":   p.Employment.Employer,
			"income": map[string]any{
				"annual":    nonZero(p.Employment.AnnualIncome),
				"frequency": p.Employment.PaymentFrequency,
			},
		},
	}
	if p.Service != nil {
		record["serviceInfo"] = map[string]any{
			"methodOfService": p.Service.Method,
			"dateOfService":   p.Service.DateOfService,
		}
	}
	return record
}

func marriageRecord(m *Marriage) map[string]any {
	if m == nil {
		return nil
	}
	record := map[string]any{
		"dateOfMarriage": m.Date,
		"placeOfMarriage": map[string]any{
			"city":     m.City,
			"province": m.Province,
			"country":  m.Country,
		},
		"dateOfSeparation":      m.SeparationDate,
		"cohabitationStartDate": m.CohabitationDate,
	}
	if m.CommonLaw {
		record["isCommonLaw"] = true
	}
	return record
}

func childRecords(children []Child) []any {
	if len(children) == 0 {
		return nil
	}
	out := make([]any, 0, len(children))
	for _, child := range children {
		record := map[string]any{
			"fullName":     child.FullName,
			"dateOfBirth":  child.DateOfBirth,
			"residingWith": child.ResidingWith,
		}
		if child.SpecialNeeds {
			record["specialNeeds"] = true
		}
		if child.Education != nil {
			record["education"] = map[string]any{
				"currentlyEnrolled": child.Education.Enrolled,
				"institution":       child.Education.Institution,
				"grade":             child.Education.Grade,
			}
		}
		out = append(out, record)
	}
	return out
}

func financialsRecord(f *Financials) map[string]any {
	if f == nil {
		return nil
	}
	record := map[string]any{
		"income": map[string]any{
			"employment":     nonZero(f.Income.Employment),
			"selfEmployment": nonZero(f.Income.SelfEmployment),
			"other":          nonZero(f.Income.Other),
			"total":          nonZero(f.Income.Total),
		},
		"expenses": map[string]any{
			"monthly":      nonZero(f.Expenses.Monthly),
			"annual":       nonZero(f.Expenses.Annual),
			"childRelated": nonZero(f.Expenses.ChildRelated),
		},
	}
	if len(f.Assets) > 0 {
		assets := make([]any, 0, len(f.Assets))
		for _, asset := range f.Assets {
			assets = append(assets, map[string]any{
				"type":        asset.Type,
				"description": asset.Description,
				"value":       asset.Value,
				"ownership":   asset.Ownership,
			})
		}
		record["assets"] = assets
	}
	if len(f.Debts) > 0 {
		debts := make([]any, 0, len(f.Debts))
		for _, debt := range f.Debts {
			debts = append(debts, map[string]any{
				"type":           debt.Type,
				"amount":         debt.Amount,
				"monthlyPayment": debt.MonthlyPayment,
			})
		}
		record["debts"] = debts
	}
	return record
}

func stringList(items []string) []any {
	if len(items) == 0 {
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// nonZero keeps zero-valued amounts out of the record so the clean pass can
// prune income/expense branches the wizard never filled in.
func nonZero(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}
