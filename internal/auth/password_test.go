package auth

import "testing"

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"simple", "secret123", "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4"},
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"accented", "senha", "b7e94be513e96e8c45cd23d162275e5a12ebde9100a425c4ebcdd7fa4dcd897c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashPassword(tt.password); got != tt.want {
				t.Errorf("HashPassword(%q) = %s, want %s", tt.password, got, tt.want)
			}
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	if HashPassword("abc") != HashPassword("abc") {
		t.Error("HashPassword is not deterministic")
	}
	if HashPassword("abc") == HashPassword("abd") {
		t.Error("HashPassword collides on different inputs")
	}
}
