package models

import "testing"

func TestStep1Valid(t *testing.T) {
	cases := []struct {
		name  string
		draft RegistrationDraft
		want  bool
	}{
		{"all filled", RegistrationDraft{FirstName: "Jane", LastName: "Doe", Email: "jane@umt.edu"}, true},
		{"missing first name", RegistrationDraft{LastName: "Doe", Email: "jane@umt.edu"}, false},
		{"missing last name", RegistrationDraft{FirstName: "Jane", Email: "jane@umt.edu"}, false},
		{"missing email", RegistrationDraft{FirstName: "Jane", LastName: "Doe"}, false},
		{"whitespace only", RegistrationDraft{FirstName: "  ", LastName: "Doe", Email: "jane@umt.edu"}, false},
		{"empty draft", RegistrationDraft{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.draft.Step1Valid(); got != tc.want {
				t.Errorf("Step1Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStep2Valid(t *testing.T) {
	cases := []struct {
		name  string
		draft RegistrationDraft
		want  bool
	}{
		{"matching passwords with terms", RegistrationDraft{Password: "Abc123", ConfirmPassword: "Abc123", AgreeTerms: true}, true},
		{"password mismatch", RegistrationDraft{Password: "Abc123", ConfirmPassword: "Abc124", AgreeTerms: true}, false},
		{"terms not agreed", RegistrationDraft{Password: "Abc123", ConfirmPassword: "Abc123"}, false},
		{"empty password", RegistrationDraft{ConfirmPassword: "Abc123", AgreeTerms: true}, false},
		{"empty confirmation", RegistrationDraft{Password: "Abc123", AgreeTerms: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.draft.Step2Valid(); got != tc.want {
				t.Errorf("Step2Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	t.Run("advances with complete profile", func(t *testing.T) {
		draft := RegistrationDraft{FirstName: "Jane", LastName: "Doe", Email: "jane@umt.edu", Step: StepProfile}
		if !draft.Advance() {
			t.Fatal("expected advance to succeed")
		}
		if draft.Step != StepCredentials {
			t.Errorf("Step = %v, want %v", draft.Step, StepCredentials)
		}
	})

	t.Run("refuses with incomplete profile", func(t *testing.T) {
		draft := RegistrationDraft{FirstName: "Jane", Step: StepProfile}
		if draft.Advance() {
			t.Fatal("expected advance to refuse")
		}
		if draft.Step != StepProfile {
			t.Errorf("Step = %v, want %v", draft.Step, StepProfile)
		}
	})

	t.Run("refuses from credentials step", func(t *testing.T) {
		draft := RegistrationDraft{FirstName: "Jane", LastName: "Doe", Email: "jane@umt.edu", Step: StepCredentials}
		if draft.Advance() {
			t.Fatal("expected advance to refuse on step 2")
		}
	})
}

func TestBackKeepsValues(t *testing.T) {
	draft := RegistrationDraft{
		FirstName: "Jane", LastName: "Doe", Email: "jane@umt.edu",
		Password: "Abc123", ConfirmPassword: "Abc123",
		Step: StepCredentials,
	}
	draft.Back()
	if draft.Step != StepProfile {
		t.Errorf("Step = %v, want %v", draft.Step, StepProfile)
	}
	if draft.Password != "Abc123" || draft.FirstName != "Jane" {
		t.Error("Back() must not discard field values")
	}
}

func TestFullName(t *testing.T) {
	draft := RegistrationDraft{FirstName: " Jane ", LastName: " Doe "}
	if got := draft.FullName(); got != "Jane Doe" {
		t.Errorf("FullName() = %q, want %q", got, "Jane Doe")
	}
}
