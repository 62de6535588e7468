package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
)

var courtLocations = []string{"Saint John", "Moncton", "Fredericton"}

// definitions builds the five Form 72 family-law entries. The clock feeds
// generated values such as court file numbers.
func definitions(clock func() time.Time) map[string]Definition {
	fileNumber := FieldMapping{
		Label:   "Court File Number",
		LabelFR: "Numéro de dossier du tribunal",
		Resolve: func(*casefile.File) any {
			return fmt.Sprintf("NBFC-%06d", clock().UnixMilli()%1_000_000)
		},
	}
	location := FieldMapping{
		Label:   "Court Location",
		LabelFR: "Emplacement du tribunal",
		Options: courtLocations,
		Resolve: func(*casefile.File) any { return courtLocations[0] },
	}

	return map[string]Definition{
		"72A": {
			ID:                  "72A",
			Title:               "Notice of Action with Statement of Claim Attached",
			TitleFR:             "Avis d'action avec déclaration de réclamation jointe",
			ApplicableCaseTypes: []string{"Divorce", "Separation", "Child Support", "Spousal Support"},
			RequiredFieldPaths: []string{
				"parties.applicant.fullName",
				"parties.respondent.fullName",
				"relationships.marriageInfo.dateOfMarriage",
				"relationships.marriageInfo.dateOfSeparation",
			},
			FieldOrder: []string{
				"courtFileNumber", "courtLocation", "applicantName", "applicantAddress",
				"respondentName", "marriageDate", "separationDate", "reliefSought",
			},
			Fields: map[string]FieldMapping{
				"courtFileNumber": fileNumber,
				"courtLocation":   location,
				"applicantName": {
					Label:    "Applicant Name",
					LabelFR:  "Nom du demandeur",
					Required: true,
					Resolve:  applicantName,
				},
				"applicantAddress": {
					Label:    "Applicant Address",
					LabelFR:  "Adresse du demandeur",
					Resolve:  applicantAddress,
					Validate: addressComplete,
				},
				"respondentName": {
					Label:    "Respondent Name",
					LabelFR:  "Nom de l'intimé",
					Required: true,
					Resolve:  respondentName,
				},
				"marriageDate": {
					Label:    "Date of Marriage",
					LabelFR:  "Date du mariage",
					Kind:     KindDate,
					Required: true,
					Resolve:  marriageDate,
				},
				"separationDate": {
					Label:    "Date of Separation",
					LabelFR:  "Date de séparation",
					Kind:     KindDate,
					Required: true,
					Resolve:  separationDate,
				},
				"reliefSought": {
					Label:   "Relief Sought",
					LabelFR: "Mesures demandées",
					Resolve: reliefSought,
				},
			},
		},
		"72B": {
			ID:                  "72B",
			Title:               "Petition for Divorce",
			TitleFR:             "Requête en divorce",
			ApplicableCaseTypes: []string{"Divorce"},
			RequiredFieldPaths: []string{
				"parties.applicant.fullName",
				"relationships.marriageInfo.dateOfMarriage",
				"relationships.marriageInfo.dateOfSeparation",
			},
			FieldOrder: []string{
				"courtFileNumber", "courtLocation", "petitionerName", "respondentName",
				"jointPetition", "marriageDate", "separationDate", "signature",
			},
			Fields: map[string]FieldMapping{
				"courtFileNumber": fileNumber,
				"courtLocation":   location,
				"petitionerName": {
					Label:    "Petitioner Name",
					LabelFR:  "Nom du requérant",
					Required: true,
					Resolve:  applicantName,
				},
				"respondentName": {
					Label:   "Respondent Name",
					LabelFR: "Nom de l'intimé",
					Resolve: respondentName,
				},
				"jointPetition": {
					Label:   "Joint Petition",
					LabelFR: "Requête conjointe",
					Kind:    KindCheckbox,
					Resolve: func(f *casefile.File) any {
						return f.Case.Circumstances.IsJointApplication
					},
				},
				"marriageDate": {
					Label:    "Date of Marriage",
					LabelFR:  "Date du mariage",
					Kind:     KindDate,
					Required: true,
					Resolve:  marriageDate,
				},
				"separationDate": {
					Label:    "Date of Separation",
					LabelFR:  "Date de séparation",
					Kind:     KindDate,
					Required: true,
					Resolve:  separationDate,
				},
				"signature": {
					Label:   "Signature of Petitioner",
					LabelFR: "Signature du requérant",
					Kind:    KindSignature,
					Resolve: applicantName,
				},
			},
		},
		"72J": {
			ID:                  "72J",
			Title:               "Financial Statement",
			TitleFR:             "État financier",
			ApplicableCaseTypes: []string{"Child Support", "Spousal Support", "Property Division"},
			RequiredFieldPaths:  []string{"parties.applicant.fullName"},
			FieldOrder: []string{
				"courtFileNumber", "name", "employer", "totalIncome", "monthlyExpenses", "signature",
			},
			Fields: map[string]FieldMapping{
				"courtFileNumber": fileNumber,
				"name": {
					Label:    "Name",
					LabelFR:  "Nom",
					Required: true,
					Resolve:  applicantName,
				},
				"employer": {
					Label:   "Employer",
					LabelFR: "Employeur",
					Resolve: func(f *casefile.File) any {
						return nonEmpty(applicant(f, func(p *casefile.Party) string {
							return p.Employment.Employer
						}))
					},
				},
				"totalIncome": {
					Label:         "Total Annual Income",
					LabelFR:       "Revenu annuel total",
					Description:   "All income sources combined, before deductions",
					DescriptionFR: "Toutes les sources de revenu combinées, avant déductions",
					Kind:          KindCurrency,
					Resolve:       totalIncome,
					Format:        formatCurrency,
				},
				"monthlyExpenses": {
					Label:   "Monthly Expenses",
					LabelFR: "Dépenses mensuelles",
					Kind:    KindCurrency,
					Resolve: monthlyExpenses,
					Format:  formatCurrency,
				},
				"signature": {
					Label:   "Signature",
					LabelFR: "Signature",
					Kind:    KindSignature,
					Resolve: applicantName,
				},
			},
		},
		"72U": {
			ID:                  "72U",
			Title:               "Affidavit of Service",
			TitleFR:             "Affidavit de signification",
			ApplicableCaseTypes: []string{"Divorce", "Separation"},
			RequiredFieldPaths:  []string{"parties.applicant.fullName"},
			FieldOrder: []string{
				"courtFileNumber", "deponentName", "deponentAddress",
				"serviceMethod", "serviceDate", "signature",
			},
			Fields: map[string]FieldMapping{
				"courtFileNumber": fileNumber,
				"deponentName": {
					Label:    "Deponent Name",
					LabelFR:  "Nom du déposant",
					Required: true,
					Resolve:  applicantName,
				},
				"deponentAddress": {
					Label:   "Deponent Address",
					LabelFR: "Adresse du déposant",
					Resolve: applicantAddress,
				},
				"serviceMethod": {
					Label:   "Method of Service",
					LabelFR: "Mode de signification",
					Resolve: func(f *casefile.File) any {
						return nonEmpty(respondentService(f, func(s *casefile.ServiceInfo) string {
							return s.Method
						}))
					},
				},
				"serviceDate": {
					Label:   "Date of Service",
					LabelFR: "Date de signification",
					Kind:    KindDate,
					Resolve: func(f *casefile.File) any {
						return nonEmpty(respondentService(f, func(s *casefile.ServiceInfo) string {
							return s.DateOfService
						}))
					},
				},
				"signature": {
					Label:   "Signature of Deponent",
					LabelFR: "Signature du déposant",
					Kind:    KindSignature,
					Resolve: applicantName,
				},
			},
		},
		"72G": {
			ID:                  "72G",
			Title:               "Notice of Motion for Interim Relief",
			TitleFR:             "Avis de motion en mesures provisoires",
			ApplicableCaseTypes: []string{"Divorce", "Separation"},
			RequiredFieldPaths:  []string{"parties.applicant.fullName"},
			FieldOrder: []string{
				"courtFileNumber", "applicantName", "foreignJurisdiction", "habitualResidence",
			},
			Fields: map[string]FieldMapping{
				"courtFileNumber": fileNumber,
				"applicantName": {
					Label:    "Applicant Name",
					LabelFR:  "Nom du demandeur",
					Required: true,
					Resolve:  applicantName,
				},
				"foreignJurisdiction": {
					Label:   "Foreign Jurisdiction",
					LabelFR: "Juridiction étrangère",
					Resolve: foreignJurisdiction,
				},
				"habitualResidence": {
					Label:   "Habitual Residence",
					LabelFR: "Résidence habituelle",
					Resolve: func(f *casefile.File) any {
						return nonEmpty(applicant(f, func(p *casefile.Party) string {
							return p.Address.Country
						}))
					},
				},
			},
		},
	}
}

// applicant reads a string off the applicant party, tolerating a nil branch.
func applicant(f *casefile.File, read func(*casefile.Party) string) string {
	if f == nil || f.Parties.Applicant == nil {
		return ""
	}
	return read(f.Parties.Applicant)
}

func respondentService(f *casefile.File, read func(*casefile.ServiceInfo) string) string {
	if f == nil || f.Parties.Respondent == nil || f.Parties.Respondent.Service == nil {
		return ""
	}
	return read(f.Parties.Respondent.Service)
}

// nonEmpty turns the empty string into the Missing sentinel so optional
// mappings fall through to the placeholder.
func nonEmpty(s string) any {
	if s == "" {
		return answers.Missing
	}
	return s
}

func applicantName(f *casefile.File) any {
	return nonEmpty(applicant(f, func(p *casefile.Party) string { return p.FullName }))
}

func respondentName(f *casefile.File) any {
	if f == nil || f.Parties.Respondent == nil {
		return answers.Missing
	}
	return nonEmpty(f.Parties.Respondent.FullName)
}

func applicantAddress(f *casefile.File) any {
	if f == nil || f.Parties.Applicant == nil {
		return answers.Missing
	}
	addr := f.Parties.Applicant.Address
	parts := make([]string, 0, 4)
	for _, part := range []string{addr.Street, addr.City, addr.Province, addr.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return answers.Missing
	}
	return strings.Join(parts, ", ")
}

func marriageDate(f *casefile.File) any {
	if f == nil || f.Relationships.Marriage == nil {
		return answers.Missing
	}
	return nonEmpty(f.Relationships.Marriage.Date)
}

func separationDate(f *casefile.File) any {
	if f == nil || f.Relationships.Marriage == nil {
		return answers.Missing
	}
	return nonEmpty(f.Relationships.Marriage.SeparationDate)
}

func reliefSought(f *casefile.File) any {
	if f == nil || len(f.Case.ReliefSought) == 0 {
		return answers.Missing
	}
	return strings.Join(f.Case.ReliefSought, "; ")
}

func totalIncome(f *casefile.File) any {
	if f == nil || f.Financials == nil {
		return answers.Missing
	}
	return f.Financials.Income.Total
}

func monthlyExpenses(f *casefile.File) any {
	if f == nil || f.Financials == nil {
		return answers.Missing
	}
	return f.Financials.Expenses.Monthly
}

func foreignJurisdiction(f *casefile.File) any {
	if f == nil || f.Relationships.Marriage == nil {
		return answers.Missing
	}
	country := f.Relationships.Marriage.Country
	if country == "" || country == "Canada" {
		return answers.Missing
	}
	return country
}

func formatCurrency(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", n)
	case int:
		return fmt.Sprintf("$%d.00", n)
	default:
		return fmt.Sprint(v)
	}
}

func addressComplete(v any) error {
	s, ok := v.(string)
	if !ok || len(s) <= 10 {
		return errors.New("address appears incomplete")
	}
	return nil
}
