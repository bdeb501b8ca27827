package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{"iranian mobile", "+989121234567", true},
		{"without plus", "989121234567", true},
		{"with separators", "+98 912 123-4567", true},
		{"parenthesized", "(98) 9121234567", true},
		{"too short", "+9", false},
		{"leading zero", "0912", false},
		{"letters", "+98abc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.expected {
				t.Errorf("ValidatePhone(%q) = %v, expected %v", tt.phone, got, tt.expected)
			}
		})
	}
}
