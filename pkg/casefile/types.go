// Package casefile defines the canonical case record — the normalized,
// court-ready representation of a wizard submission — and the transformer that
// builds it from the raw answer record.
package casefile

import "time"

// File is the canonical case record consumed by the form catalog.
type File struct {
	Metadata      Metadata
	Parties       Parties
	Case          Details
	Relationships Relationships
	Financials    *Financials
}

// Metadata carries submission facts that every generated form shares.
type Metadata struct {
	SubmissionDate time.Time
	Province       string
	LegalCategory  string
	CaseType       string
	Version        string
}

// Parties holds the applicant and, when named, the respondent. Respondent is
// nil for applications without an opposing party.
type Parties struct {
	Applicant  *Party
	Respondent *Party
}

// Party describes one side of the proceeding.
type Party struct {
	FullName      string
	DateOfBirth   string
	Gender        string
	MaritalStatus string
	Contact       Contact
	Address       Address
	Employment    Employment
	Service       *ServiceInfo
}

type Contact struct {
	Email          string
	Phone          string
	AlternatePhone string
}

type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

type Employment struct {
	Status           string
	Occupation       string
	Employer         string
	AnnualIncome     float64
	PaymentFrequency string
}

// ServiceInfo records how and when the respondent was served.
type ServiceInfo struct {
	Method        string
	DateOfService string
}

// Details captures the substance of the claim.
type Details struct {
	Description   string
	Circumstances Circumstances
	ReliefSought  []string
}

// Circumstances are derived flags, not copied answers; the transformer owns
// the derivation rules.
type Circumstances struct {
	HasChildren           bool
	HasFinancialClaims    bool
	IsJointApplication    bool
	HasPropertyClaims     bool
	HasDomesticViolence   bool
	RequiresUrgentRelief  bool
	InternationalElements bool
}

type Relationships struct {
	Marriage *Marriage
	Children []Child
}

type Marriage struct {
	Date             string
	City             string
	Province         string
	Country          string
	SeparationDate   string
	CohabitationDate string
	CommonLaw        bool
}

type Child struct {
	FullName     string
	DateOfBirth  string
	ResidingWith string
	SpecialNeeds bool
	Education    *Education
}

type Education struct {
	Enrolled    bool
	Institution string
	Grade       string
}

type Financials struct {
	Income   Income
	Expenses Expenses
	Assets   []Asset
	Debts    []Debt
}

type Income struct {
	Employment     float64
	SelfEmployment float64
	Other          float64
	Total          float64
}

type Expenses struct {
	Monthly      float64
	Annual       float64
	ChildRelated float64
}

type Asset struct {
	Type        string
	Description string
	Value       float64
	Ownership   string
}

type Debt struct {
	Type           string
	Amount         float64
	MonthlyPayment float64
}
