package documents

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

func verifiedPDF(id, docType string) Uploaded {
	return Uploaded{
		ID:       id,
		Name:     id + ".pdf",
		Type:     docType,
		MimeType: "application/pdf",
		Size:     1024,
		Verified: true,
	}
}

func TestValidateRequired_MissingDocuments(t *testing.T) {
	table := NewTable()

	result := table.ValidateRequired("Simple or joint divorce", nil, nil)
	if result.Valid {
		t.Fatalf("expected invalid result with no uploads")
	}
	if len(result.Missing) != 1 {
		t.Fatalf("expected one missing document, got %v", result.Missing)
	}
	missing := result.Missing[0]
	if missing.ID != "marriage_certificate" {
		t.Fatalf("expected marriage_certificate, got %q", missing.ID)
	}
	if missing.Message != "Missing required document: Marriage certificate" {
		t.Fatalf("unexpected message %q", missing.Message)
	}
	if _, ok := result.Errors["marriageCertificate"]; !ok {
		t.Fatalf("expected divorce secondary check to report, got %v", result.Errors)
	}
}

func TestValidateRequired_OptionalDocumentsNotRequired(t *testing.T) {
	table := NewTable()

	uploads := []Uploaded{verifiedPDF("doc-1", "marriage_certificate")}
	result := table.ValidateRequired("Simple or joint divorce", uploads, nil)
	if !result.Valid {
		t.Fatalf("expected valid result, got missing=%v errors=%v quality=%v",
			result.Missing, result.Errors, result.Quality)
	}
}

func TestValidateRequired_UnverifiedCertificateFailsCheck(t *testing.T) {
	table := NewTable()

	cert := verifiedPDF("doc-1", "marriage_certificate")
	cert.Verified = false
	result := table.ValidateRequired("Simple or joint divorce", []Uploaded{cert}, nil)
	if result.Valid {
		t.Fatalf("expected unverified certificate to fail")
	}
	if len(result.Missing) != 0 {
		t.Fatalf("coverage should be satisfied, got %v", result.Missing)
	}
	if result.Errors["marriageCertificate"] == "" {
		t.Fatalf("expected marriageCertificate error, got %v", result.Errors)
	}
}

func TestValidateRequired_ConditionalDocument(t *testing.T) {
	table := NewTable()

	// No financial claims: the financial statement is not required.
	result := table.ValidateRequired("Separation with other issues", nil, answers.Record{
		"hasFinancialClaims": false,
	})
	if !result.Valid {
		t.Fatalf("expected valid without financial claims, got %v", result.Missing)
	}

	// Condition met: it becomes required.
	result = table.ValidateRequired("Separation with other issues", nil, answers.Record{
		"hasFinancialClaims": true,
	})
	if result.Valid {
		t.Fatalf("expected missing financial statement")
	}
	if len(result.Missing) != 1 || result.Missing[0].ID != "financial_statement" {
		t.Fatalf("expected financial_statement missing, got %v", result.Missing)
	}

	// Unanswered condition behaves like false.
	result = table.ValidateRequired("Separation with other issues", nil, nil)
	if !result.Valid {
		t.Fatalf("expected unanswered condition to skip the requirement, got %v", result.Missing)
	}
}

func TestValidateRequired_UnknownCategoryFailsOpen(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	table := NewTable(WithLogger(zap.New(core)))

	result := table.ValidateRequired("General Inquiry", nil, nil)
	if !result.Valid {
		t.Fatalf("expected unknown category to report valid")
	}
	if len(result.Missing) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected no findings, got %+v", result)
	}

	entries := logs.FilterMessage("pathway requirements not found for category").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["category"]; got != "General Inquiry" {
		t.Fatalf("expected category field, got %v", got)
	}
}

func TestValidateRequired_SupportChecks(t *testing.T) {
	table := NewTable()

	uploads := []Uploaded{
		verifiedPDF("doc-1", "children_birth_certificates"),
		verifiedPDF("doc-2", "financial_statement"),
	}
	result := table.ValidateRequired("Child Support", uploads, nil)
	if result.Valid {
		t.Fatalf("expected missing income proof to fail")
	}
	if len(result.Missing) != 1 || result.Missing[0].ID != "income_proof" {
		t.Fatalf("expected income_proof missing, got %v", result.Missing)
	}
	if result.Errors["incomeProof"] == "" {
		t.Fatalf("expected incomeProof check error, got %v", result.Errors)
	}
}

func TestQualityGates(t *testing.T) {
	table := NewTable()

	uploads := []Uploaded{
		{
			ID:       "doc-1",
			Name:     "certificate.pdf",
			Type:     "marriage_certificate",
			MimeType: "application/pdf",
			Size:     11 * 1024 * 1024,
			Verified: true,
		},
		{
			ID:       "doc-2",
			Name:     "notes.docx",
			Type:     "separation_agreement",
			MimeType: "application/msword",
			Size:     1024,
		},
		{
			ID:       "doc-3",
			Name:     "photo.jpg",
			Type:     "separation_agreement",
			MimeType: "image/jpeg",
			Size:     1024,
			Quality:  0.5,
		},
	}
	result := table.ValidateRequired("Simple or joint divorce", uploads, nil)
	if result.Valid {
		t.Fatalf("expected quality issues to invalidate the result")
	}
	if len(result.Quality) != 3 {
		t.Fatalf("expected three quality issues, got %v", result.Quality)
	}
	byDoc := map[string]string{}
	for _, issue := range result.Quality {
		byDoc[issue.DocumentID] = issue.Message
	}
	if byDoc["doc-1"] != "certificate.pdf exceeds maximum file size of 10MB" {
		t.Fatalf("unexpected size message %q", byDoc["doc-1"])
	}
	if byDoc["doc-2"] != "notes.docx must be a PDF, JPEG, or PNG file" {
		t.Fatalf("unexpected type message %q", byDoc["doc-2"])
	}
	if byDoc["doc-3"] != "photo.jpg image quality is too low. Please provide a clearer copy" {
		t.Fatalf("unexpected quality message %q", byDoc["doc-3"])
	}
}

func TestRequirements(t *testing.T) {
	table := NewTable()

	reqs := table.Requirements("Simple or joint divorce")
	if len(reqs) != 2 {
		t.Fatalf("expected two requirements, got %v", reqs)
	}
	if reqs[1].ID != "separation_agreement" || !reqs[1].Optional {
		t.Fatalf("expected optional separation agreement, got %+v", reqs[1])
	}
	if got := table.Requirements("General Inquiry"); got != nil {
		t.Fatalf("expected nil for unknown category, got %v", got)
	}
}

func TestLoadPathways_RejectsBadCheckKind(t *testing.T) {
	_, err := LoadPathways([]byte("pathways:\n  \"X\":\n    checks: bogus\n"))
	if err == nil {
		t.Fatalf("expected error for unknown check kind")
	}
}
