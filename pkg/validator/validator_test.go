package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"jane@example.com", "j.doe+tag@mail.co.za"}
	invalid := []string{"", "jane", "jane@", "@example.com", "jane@example"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2026-03-16") {
		t.Fatal("корректная дата должна проходить проверку")
	}
	for _, date := range []string{"", "16-03-2026", "2026/03/16", "2026-3-16"} {
		if ValidateDate(date) {
			t.Fatalf("ValidateDate(%q) = true, want false", date)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0821234567", "+27821234567"},
		{"27821234567", "+27821234567"},
		{"+27821234567", "+27821234567"},
		{"082 123 4567", "+27821234567"},
		{"821234567", "+27821234567"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`<script>alert("x");</script>`); got != "scriptalert(x)/script" {
		t.Fatalf("SanitizeString: %q", got)
	}
	if got := SanitizeString("Обычный текст"); got != "Обычный текст" {
		t.Fatalf("обычный текст не должен меняться, got %q", got)
	}
}
