package casefile

import (
	"strings"
	"time"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

// Version stamped into every canonical record.
const Version = "1.0"

// financialReliefKinds are the relief entries that imply a financial claim.
var financialReliefKinds = map[string]struct{}{
	"support":  {},
	"property": {},
	"pension":  {},
}

// Option customises a Transformer.
type Option func(*Transformer)

// WithClock overrides the submission timestamp source. Useful in tests.
func WithClock(clock func() time.Time) Option {
	return func(t *Transformer) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// Transformer normalizes heterogeneous wizard answers into a canonical case
// record. Each per-section transform is a pure function of its answer subtree
// and yields a nil branch when the subtree is entirely absent.
type Transformer struct {
	clock func() time.Time
}

// NewTransformer constructs a Transformer applying any provided options.
func NewTransformer(options ...Option) *Transformer {
	t := &Transformer{clock: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Transform normalizes record using a default Transformer.
func Transform(record answers.Record) *File {
	return NewTransformer().Transform(record)
}

// Transform builds the canonical case record. The input record is never
// mutated.
func (t *Transformer) Transform(record answers.Record) *File {
	return &File{
		Metadata: Metadata{
			SubmissionDate: t.clock().UTC(),
			Province:       answers.String(record, "province"),
			LegalCategory:  answers.String(record, "legalCategory"),
			CaseType:       answers.String(record, "caseType"),
			Version:        Version,
		},
		Parties: Parties{
			Applicant:  transformApplicant(record),
			Respondent: transformRespondent(record),
		},
		Case: Details{
			Description:   sanitizeText(answers.String(record, "caseDescription")),
			Circumstances: transformCircumstances(record),
			ReliefSought:  transformRelief(record),
		},
		Relationships: Relationships{
			Marriage: transformMarriage(record),
			Children: transformChildren(record),
		},
		Financials: transformFinancials(record),
	}
}

func transformApplicant(record answers.Record) *Party {
	if answers.IsMissing(answers.Resolve(record, "personalInfo")) {
		return nil
	}
	income, _ := answers.Float(record, "personalInfo.employment.annualIncome")
	return &Party{
		FullName:      answers.String(record, "personalInfo.fullName"),
		DateOfBirth:   FormatDate(answers.String(record, "personalInfo.dateOfBirth")),
		Gender:        answers.String(record, "personalInfo.gender"),
		MaritalStatus: answers.String(record, "personalInfo.maritalStatus"),
		Contact: Contact{
			Email:          answers.String(record, "personalInfo.contact.email"),
			Phone:          answers.String(record, "personalInfo.contact.phone"),
			AlternatePhone: answers.String(record, "personalInfo.contact.alternatePhone"),
		},
		Address: transformAddress(record, "personalInfo.address"),
		Employment: Employment{
			Status:           answers.String(record, "personalInfo.employment.status"),
			Occupation:       answers.String(record, "personalInfo.employment.occupation"),
			Employer:         answers.String(record, "personalInfo.employment.employer"),
			AnnualIncome:     income,
			PaymentFrequency: answers.String(record, "personalInfo.employment.paymentFrequency"),
		},
	}
}

func transformRespondent(record answers.Record) *Party {
	if answers.IsMissing(answers.Resolve(record, "respondentInfo")) {
		return nil
	}
	party := &Party{
		FullName: answers.String(record, "respondentInfo.fullName"),
		Contact: Contact{
			Email: answers.String(record, "respondentInfo.email"),
			Phone: answers.String(record, "respondentInfo.phone"),
		},
		Address: transformAddress(record, "respondentInfo.address"),
	}
	method := answers.String(record, "respondentInfo.serviceMethod")
	date := answers.String(record, "respondentInfo.serviceDate")
	if method != "" || date != "" {
		party.Service = &ServiceInfo{
			Method:        method,
			DateOfService: FormatDate(date),
		}
	}
	return party
}

// transformAddress maps the wizard's free-form state/zipCode labels onto the
// canonical province/postalCode keys and defaults the country to Canada.
func transformAddress(record answers.Record, prefix string) Address {
	country := answers.String(record, prefix+".country")
	if country == "" {
		country = "Canada"
	}
	return Address{
		Street:     answers.String(record, prefix+".street"),
		City:       answers.String(record, prefix+".city"),
		Province:   answers.String(record, prefix+".state"),
		PostalCode: answers.String(record, prefix+".zipCode"),
		Country:    country,
	}
}

func transformCircumstances(record answers.Record) Circumstances {
	relief := answers.Strings(record, "reliefSought")
	hasFinancial := false
	hasProperty := false
	for _, entry := range relief {
		if _, ok := financialReliefKinds[strings.ToLower(entry)]; ok {
			hasFinancial = true
		}
		if entry == "property" {
			hasProperty = true
		}
	}
	return Circumstances{
		HasChildren:           len(answers.List(record, "childrenInfo")) > 0,
		HasFinancialClaims:    hasFinancial,
		IsJointApplication:    answers.Bool(record, "isJointApplication"),
		HasPropertyClaims:     hasProperty,
		HasDomesticViolence:   answers.Bool(record, "hasDomesticViolence"),
		RequiresUrgentRelief:  answers.Bool(record, "requiresUrgentRelief"),
		InternationalElements: answers.Bool(record, "internationalElements"),
	}
}

func transformRelief(record answers.Record) []string {
	entries := answers.Strings(record, "reliefSought")
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if cleaned := sanitizeText(entry); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func transformMarriage(record answers.Record) *Marriage {
	if answers.IsMissing(answers.Resolve(record, "marriageInfo")) {
		return nil
	}
	return &Marriage{
		Date:             FormatDate(answers.String(record, "marriageInfo.date")),
		City:             answers.String(record, "marriageInfo.city"),
		Province:         answers.String(record, "marriageInfo.province"),
		Country:          answers.String(record, "marriageInfo.country"),
		SeparationDate:   FormatDate(answers.String(record, "marriageInfo.separationDate")),
		CohabitationDate: FormatDate(answers.String(record, "marriageInfo.cohabitationDate")),
		CommonLaw:        answers.Bool(record, "marriageInfo.isCommonLaw"),
	}
}

func transformChildren(record answers.Record) []Child {
	items := answers.List(record, "childrenInfo")
	if len(items) == 0 {
		return nil
	}
	out := make([]Child, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		child := answers.Record(entry)
		c := Child{
			FullName:     answers.String(child, "name"),
			DateOfBirth:  FormatDate(answers.String(child, "dateOfBirth")),
			ResidingWith: answers.String(child, "residingWith"),
			SpecialNeeds: answers.Bool(child, "specialNeeds"),
		}
		if !answers.IsMissing(answers.Resolve(child, "isEnrolled")) ||
			answers.String(child, "schoolName") != "" {
			c.Education = &Education{
				Enrolled:    answers.Bool(child, "isEnrolled"),
				Institution: answers.String(child, "schoolName"),
				Grade:       answers.String(child, "grade"),
			}
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func transformFinancials(record answers.Record) *Financials {
	if answers.IsMissing(answers.Resolve(record, "financialInfo")) {
		return nil
	}
	float := func(path string) float64 {
		v, _ := answers.Float(record, "financialInfo."+path)
		return v
	}
	fin := &Financials{
		Income: Income{
			Employment:     float("employmentIncome"),
			SelfEmployment: float("selfEmploymentIncome"),
			Other:          float("otherIncome"),
			Total:          float("totalIncome"),
		},
		Expenses: Expenses{
			Monthly:      float("monthlyExpenses"),
			Annual:       float("annualExpenses"),
			ChildRelated: float("childExpenses"),
		},
	}
	for _, item := range answers.List(record, "financialInfo.assets") {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		asset := answers.Record(entry)
		value, _ := answers.Float(asset, "value")
		fin.Assets = append(fin.Assets, Asset{
			Type:        answers.String(asset, "type"),
			Description: answers.String(asset, "description"),
			Value:       value,
			Ownership:   answers.String(asset, "ownership"),
		})
	}
	for _, item := range answers.List(record, "financialInfo.debts") {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		debt := answers.Record(entry)
		amount, _ := answers.Float(debt, "amount")
		monthly, _ := answers.Float(debt, "monthlyPayment")
		fin.Debts = append(fin.Debts, Debt{
			Type:           answers.String(debt, "type"),
			Amount:         amount,
			MonthlyPayment: monthly,
		})
	}
	return fin
}
