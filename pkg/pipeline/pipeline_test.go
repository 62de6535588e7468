package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-courtforms/pkg/answers"
	"github.com/goliatone/go-courtforms/pkg/casefile"
	"github.com/goliatone/go-courtforms/pkg/documents"
	"github.com/goliatone/go-courtforms/pkg/forms"
)

func testClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func divorceAnswers() answers.Record {
	return answers.Record{
		"legalCategory": "Family Law",
		"caseType":      "Simple or joint divorce",
		"personalInfo": map[string]any{
			"fullName": "Jane Doe",
			"contact": map[string]any{
				"email": "j@example.com",
				"phone": "5065551234",
			},
		},
		"marriageInfo": map[string]any{
			"date":           "2010-01-01",
			"separationDate": "2022-06-01",
		},
	}
}

func verifiedCertificate() []documents.Uploaded {
	return []documents.Uploaded{{
		ID:       "doc-1",
		Name:     "certificate.pdf",
		Type:     "marriage_certificate",
		MimeType: "application/pdf",
		Size:     2048,
		Verified: true,
	}}
}

func TestGenerateForms_DivorcePetition(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	generated, err := p.GenerateForms(context.Background(), divorceAnswers())
	require.NoError(t, err)

	byID := map[string]GeneratedForm{}
	for _, form := range generated {
		byID[form.FormID] = form
	}
	require.Contains(t, byID, "72B")
	// Sole application: the affidavit of service rides along.
	require.Contains(t, byID, "72U")

	petition := byID["72B"]
	assert.Equal(t, "Petition for Divorce", petition.Title)
	assert.Equal(t, "application/pdf", petition.ContentType)
	assert.True(t, bytes.HasPrefix(petition.Data, []byte("%PDF")))

	require.NotEmpty(t, petition.Document.Pages)
	var page1 []string
	for _, op := range petition.Document.Pages[0].Ops {
		page1 = append(page1, op.Text)
	}
	assert.Contains(t, strings.Join(page1, "\n"), "JANE DOE")
}

func TestGenerateForms_TranscriptFormat(t *testing.T) {
	p, err := New(WithClock(testClock), WithOutputFormat("transcript"))
	require.NoError(t, err)

	generated, err := p.GenerateForms(context.Background(), divorceAnswers())
	require.NoError(t, err)
	require.NotEmpty(t, generated)

	assert.Equal(t, "text/plain; charset=utf-8", generated[0].ContentType)
	assert.Contains(t, string(generated[0].Data), "JANE DOE")
	assert.Contains(t, string(generated[0].Data), "----- Page 1 -----")
}

func TestGenerateForms_AggregatesMappingFailures(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	// Child Support needs 72A, which requires a respondent and marriage dates.
	record := answers.Record{
		"caseType": "Child Support",
		"personalInfo": map[string]any{
			"fullName": "Jane Doe",
		},
	}
	generated, err := p.GenerateForms(context.Background(), record)
	require.Error(t, err)
	assert.Nil(t, generated, "no partial output on failure")

	var missing *forms.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "72A", missing.FormID)
	assert.Contains(t, missing.Labels, "Respondent Name")
}

func TestGenerateForms_UnknownCaseType(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	_, err = p.GenerateForms(context.Background(), answers.Record{"caseType": "General Inquiry"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no forms")
}

func TestValidateSubmission_CompleteDivorce(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	result := p.ValidateSubmission(divorceAnswers(), verifiedCertificate())
	assert.True(t, result.Valid, "field errors: %v, documents: %+v", result.FieldErrors, result.Documents)
}

func TestValidateSubmission_MissingCertificate(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	result := p.ValidateSubmission(divorceAnswers(), nil)
	assert.False(t, result.Valid)
	require.Len(t, result.Documents.Missing, 1)
	assert.Equal(t, "marriage_certificate", result.Documents.Missing[0].ID)
}

func TestValidateSubmission_DescriptionLengthBoundary(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	record := divorceAnswers()
	record["caseDescription"] = strings.Repeat("a", 49)
	result := p.ValidateSubmission(record, verifiedCertificate())
	assert.False(t, result.Valid)
	assert.Equal(t, "Must be between 50 and 1000 characters if provided",
		result.FieldErrors["caseDescription"])

	record["caseDescription"] = strings.Repeat("a", 50)
	result = p.ValidateSubmission(record, verifiedCertificate())
	assert.True(t, result.Valid, "field errors: %v", result.FieldErrors)
}

func TestValidateSubmission_SeparationBeforeMarriage(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	record := divorceAnswers()
	record["marriageInfo"] = map[string]any{
		"date":           "2010-01-01",
		"separationDate": "2009-01-01",
	}
	result := p.ValidateSubmission(record, verifiedCertificate())
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.FieldErrors["marriageInfo.separationDate"])
}

func TestDetermineRequiredForms_SeparationWithChildren(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	got := p.DetermineRequiredForms("Separation with other issues", casefile.Circumstances{
		HasChildren:        true,
		IsJointApplication: false,
	})
	assert.Equal(t, []string{"72A", "72J", "72U"}, got)

	counts := map[string]int{}
	for _, id := range got {
		counts[id]++
	}
	for id, n := range counts {
		assert.Equalf(t, 1, n, "form %s appears %d times", id, n)
	}
}

func TestRequiredDocuments_Checklist(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	reqs := p.RequiredDocuments("Simple or joint divorce")
	require.NotEmpty(t, reqs)
	assert.Equal(t, "marriage_certificate", reqs[0].ID)

	assert.Nil(t, p.RequiredDocuments("General Inquiry"))
}

func TestNew_UnknownOutputFormat(t *testing.T) {
	_, err := New(WithOutputFormat("html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestGenerateForms_FrenchLocale(t *testing.T) {
	p, err := New(WithClock(testClock), WithLocale("fr"))
	require.NoError(t, err)

	generated, err := p.GenerateForms(context.Background(), divorceAnswers())
	require.NoError(t, err)

	var petition *GeneratedForm
	for i := range generated {
		if generated[i].FormID == "72B" {
			petition = &generated[i]
		}
	}
	require.NotNil(t, petition)
	assert.Equal(t, "Requête en divorce", petition.Title)
}

func TestGenerateForms_ErrorJoinListsEveryForm(t *testing.T) {
	p, err := New(WithClock(testClock))
	require.NoError(t, err)

	// Empty personal info fails both 72A and 72J mapping.
	record := answers.Record{"caseType": "Child Support"}
	_, err = p.GenerateForms(context.Background(), record)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "72A") && strings.Contains(err.Error(), "72J"),
		"expected both forms in %v", err)

	var missing *forms.MissingFieldError
	assert.True(t, errors.As(err, &missing))
}
