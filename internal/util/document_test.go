package util

import "testing"

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formatted cnpj", in: "12.345.678/0001-95", want: "12345678000195"},
		{name: "formatted cpf", in: "123.456.789-09", want: "12345678909"},
		{name: "already plain", in: "12345678000195", want: "12345678000195"},
		{name: "letters stripped", in: "abc123def", want: "123"},
		{name: "empty", in: "", want: ""},
		{name: "no digits", in: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDocument(tt.in); got != tt.want {
				t.Fatalf("NormalizeDocument(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHashDocument(t *testing.T) {
	a := HashDocument("12345678000195", "salt-a")
	b := HashDocument("12345678000195", "salt-a")
	if a != b {
		t.Fatal("hash is not deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256, got %d chars", len(a))
	}

	if HashDocument("12345678000195", "salt-b") == a {
		t.Fatal("different salts must produce different hashes")
	}
	if HashDocument("99999999000199", "salt-a") == a {
		t.Fatal("different documents must produce different hashes")
	}
}
