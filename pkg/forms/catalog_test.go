package forms

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-courtforms/pkg/casefile"
)

func TestDetermineRequired_BaseTable(t *testing.T) {
	catalog := NewCatalog()
	joint := casefile.Circumstances{IsJointApplication: true}

	cases := []struct {
		caseType string
		want     []string
	}{
		{"Simple or joint divorce", []string{"72B"}},
		{"Separation with other issues", []string{"72A"}},
		{"Child Support", []string{"72A", "72J"}},
		{"Spousal Support", []string{"72A", "72J"}},
		{"Property Division", []string{"72A", "72J"}},
	}
	for _, tc := range cases {
		got := catalog.DetermineRequired(tc.caseType, joint)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s forms mismatch (-want +got):\n%s", tc.caseType, diff)
		}
	}
}

func TestDetermineRequired_ConditionalFormsOnce(t *testing.T) {
	catalog := NewCatalog()

	got := catalog.DetermineRequired("Separation with other issues", casefile.Circumstances{
		HasChildren:        true,
		IsJointApplication: false,
	})
	want := []string{"72A", "72J", "72U"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("forms mismatch (-want +got):\n%s", diff)
	}
}

func TestDetermineRequired_DeduplicatesPreservingOrder(t *testing.T) {
	catalog := NewCatalog()

	// Child Support already carries 72J; hasChildren must not add a second.
	got := catalog.DetermineRequired("Child Support", casefile.Circumstances{
		HasChildren:        true,
		IsJointApplication: true,
	})
	want := []string{"72A", "72J"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("forms mismatch (-want +got):\n%s", diff)
	}
}

func TestDetermineRequired_ChildrenNeverRemoveForms(t *testing.T) {
	catalog := NewCatalog()

	for _, caseType := range []string{
		"Simple or joint divorce", "Separation with other issues",
		"Child Support", "Spousal Support", "Property Division",
	} {
		base := casefile.Circumstances{IsJointApplication: true}
		withKids := base
		withKids.HasChildren = true

		before := catalog.DetermineRequired(caseType, base)
		after := catalog.DetermineRequired(caseType, withKids)

		got := make(map[string]struct{}, len(after))
		for _, id := range after {
			got[id] = struct{}{}
		}
		for _, id := range before {
			if _, ok := got[id]; !ok {
				t.Fatalf("%s: hasChildren removed form %s", caseType, id)
			}
		}
	}
}

func TestDetermineRequired_InternationalElements(t *testing.T) {
	catalog := NewCatalog()

	got := catalog.DetermineRequired("Simple or joint divorce", casefile.Circumstances{
		IsJointApplication:    true,
		InternationalElements: true,
	})
	want := []string{"72B", "72G"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("forms mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinition_Unknown(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Definition("99Z")
	var unknown *UnknownFormError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFormError, got %v", err)
	}
	if unknown.FormID != "99Z" {
		t.Fatalf("expected form ID in error, got %q", unknown.FormID)
	}
}

func TestDefinition_FieldOrderCoversAllFields(t *testing.T) {
	catalog := NewCatalog()

	for _, id := range []string{"72A", "72B", "72J", "72U", "72G"} {
		def, err := catalog.Definition(id)
		if err != nil {
			t.Fatalf("definition %s: %v", id, err)
		}
		if len(def.FieldOrder) != len(def.Fields) {
			t.Fatalf("%s: field order lists %d keys, definition has %d",
				id, len(def.FieldOrder), len(def.Fields))
		}
		for _, key := range def.FieldOrder {
			mapping, ok := def.Fields[key]
			if !ok {
				t.Fatalf("%s: ordered key %q has no mapping", id, key)
			}
			if mapping.Resolve == nil {
				t.Fatalf("%s: mapping %q has no resolver", id, key)
			}
			if mapping.Label == "" {
				t.Fatalf("%s: mapping %q has no label", id, key)
			}
		}
	}
}
