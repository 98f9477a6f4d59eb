package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	invalid := []string{"24:00", "8:3", "0830", "08:60", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month, year int
		want        bool
	}{
		{1, 2025, true},
		{12, 2020, true},
		{0, 2025, false},
		{13, 2025, false},
		{6, 2019, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.month, c.year); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestIsValidBankAccount(t *testing.T) {
	valid := []string{"123456", "00112233445566"}
	invalid := []string{"12345", "123456789012345678901", "12a456", ""}
	for _, s := range valid {
		if !IsValidBankAccount(s) {
			t.Errorf("IsValidBankAccount(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidBankAccount(s) {
			t.Errorf("IsValidBankAccount(%q) = true, want false", s)
		}
	}
}
