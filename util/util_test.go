package util

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nh4-secreta")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := VerifyPassword(hash, "s3nh4-secreta"); err != nil {
		t.Errorf("VerifyPassword rejected the original password: %v", err)
	}
	if err := VerifyPassword(hash, "senha-errada"); err == nil {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestGenerateInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Maria da Silva", "MS"},
		{"João", "JO"},
		{"Carlos Eduardo Pereira Lima", "CL"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := GenerateInitials(tt.name); got != tt.want {
			t.Errorf("GenerateInitials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
