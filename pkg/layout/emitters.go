package layout

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-courtforms/pkg/forms"
)

// roleX is where party roles (APPLICANT, RESPONDENT) sit on the right side of
// a party block.
const roleX = 150

type emitter func(*writer, *forms.FieldSet)

var emitters = map[string]emitter{
	"72A": emitNoticeOfAction,
	"72B": emitPetition,
	"72J": emitFinancialStatement,
	"72U": emitAffidavitOfService,
	"72G": emitInterimRelief,
}

func emitNoticeOfAction(w *writer, set *forms.FieldSet) {
	emitCourtFileNumber(w, set)
	emitParty(w, "BETWEEN:", fieldText(set, "applicantName"), "APPLICANT")
	emitParty(w, "AND:", fieldText(set, "respondentName"), "RESPONDENT")
	emitRemainingFields(w, set, "courtFileNumber", "applicantName", "respondentName")
}

func emitPetition(w *writer, set *forms.FieldSet) {
	emitCourtFileNumber(w, set)
	emitParty(w, "BETWEEN:", fieldText(set, "petitionerName"), "PETITIONER")
	emitParty(w, "AND:", fieldText(set, "respondentName"), "RESPONDENT")
	emitRemainingFields(w, set, "courtFileNumber", "petitionerName", "respondentName")
}

func emitFinancialStatement(w *writer, set *forms.FieldSet) {
	emitCourtFileNumber(w, set)

	w.ensure(10)
	w.advance(5)
	w.centered("FINANCIAL STATEMENT", w.policy.SectionFontSize)
	w.advance(15)

	w.ensure(10)
	w.textAt("A. PERSONAL INFORMATION", w.policy.Margin, w.policy.SectionFontSize)
	w.advance(10)

	w.ensure(10)
	w.textAt("Name:", w.policy.Margin, w.policy.LabelFontSize)
	w.textAt(fieldText(set, "name"), w.policy.Margin+20, w.policy.ValueFontSize)
	w.advance(15)

	emitRemainingFields(w, set, "courtFileNumber", "name")
}

func emitAffidavitOfService(w *writer, set *forms.FieldSet) {
	emitCourtFileNumber(w, set)

	w.ensure(10)
	w.advance(5)
	w.centered("AFFIDAVIT OF SERVICE", w.policy.SectionFontSize)
	w.advance(15)

	w.ensure(10)
	w.textAt("I,", w.policy.Margin, w.policy.LabelFontSize)
	deponent := fmt.Sprintf("%s, of %s,",
		fieldText(set, "deponentName"), fieldText(set, "deponentAddress"))
	w.textAt(deponent, w.policy.Margin+5, w.policy.ValueFontSize)
	w.advance(10)
	w.wrapped("make oath and say that I served the respondent with the documents listed below.",
		w.policy.Margin, w.policy.ContentWidth(), w.policy.ValueFontSize)
	w.advance(5)

	emitRemainingFields(w, set, "courtFileNumber", "deponentName", "deponentAddress")
}

func emitInterimRelief(w *writer, set *forms.FieldSet) {
	emitCourtFileNumber(w, set)

	w.ensure(10)
	w.advance(5)
	w.centered("INTERNATIONAL ELEMENTS", w.policy.SectionFontSize)
	w.advance(15)

	w.ensure(10)
	w.textAt("Applicant:", w.policy.Margin, w.policy.LabelFontSize)
	w.textAt(strings.ToUpper(fieldText(set, "applicantName")), w.policy.Margin+25, w.policy.ValueFontSize)
	w.advance(10)

	emitRemainingFields(w, set, "courtFileNumber", "applicantName")
}

func emitCourtFileNumber(w *writer, set *forms.FieldSet) {
	number := fieldText(set, "courtFileNumber")
	if number == "" {
		return
	}
	w.textAt(fmt.Sprintf("Court File Number: %s", number), w.policy.Margin, w.policy.ValueFontSize)
	w.advance(10)
}

// emitParty draws one side of the style of cause: the connective, the party
// name in capitals, and the role against the right margin.
func emitParty(w *writer, connective, name, role string) {
	w.ensure(10)
	w.textAt(connective, w.policy.Margin, w.policy.LabelFontSize)
	w.advance(8)
	w.textAt(strings.ToUpper(name), w.policy.Margin*2, w.policy.ValueFontSize)
	w.textAt(role, roleX, w.policy.LabelFontSize)
	w.advance(12)
}

// emitRemainingFields renders every mapped field not covered by a dedicated
// block, in catalog order.
func emitRemainingFields(w *writer, set *forms.FieldSet, rendered ...string) {
	skip := make(map[string]struct{}, len(rendered))
	for _, key := range rendered {
		skip[key] = struct{}{}
	}
	for _, key := range set.Order {
		if _, ok := skip[key]; ok {
			continue
		}
		emitField(w, set.Fields[key])
	}
}

func emitField(w *writer, field forms.MappedField) {
	switch field.Kind {
	case forms.KindCheckbox:
		box := "[ ]"
		if checked, ok := field.Value.(bool); ok && checked {
			box = "[X]"
		}
		w.ensure(w.policy.LineHeight)
		w.textAt(fmt.Sprintf("%s %s", box, field.Label), w.policy.Margin, w.policy.ValueFontSize)
		w.advance(8)
	case forms.KindSignature:
		w.ensure(15)
		w.advance(5)
		w.textAt(strings.Repeat("_", 30), w.policy.Margin, w.policy.ValueFontSize)
		w.advance(w.policy.LineHeight)
		w.textAt(field.Label, w.policy.Margin, w.policy.ValueFontSize)
		w.advance(8)
	case forms.KindText, forms.KindDate, forms.KindNumber, forms.KindCurrency:
		w.wrapped(fmt.Sprintf("%s: %v", field.Label, field.Value),
			w.policy.Margin, w.policy.ContentWidth(), w.policy.ValueFontSize)
		w.advance(3)
	}
}

func fieldText(set *forms.FieldSet, key string) string {
	field, ok := set.Fields[key]
	if !ok || field.Value == nil {
		return ""
	}
	return fmt.Sprint(field.Value)
}
