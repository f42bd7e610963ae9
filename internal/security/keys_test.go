package security

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPEM(t *testing.T) {
	testPublicKeyPEM := TestPublicKeyPEM()
	dir := t.TempDir()
	path := filepath.Join(dir, "pub.pem")
	if err := os.WriteFile(path, []byte(testPublicKeyPEM), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"inline", testPublicKeyPEM, false},
		{"escaped newlines", strings.ReplaceAll(testPublicKeyPEM, "\n", `\n`), false},
		{"file path", path, false},
		{"empty", "  ", true},
		{"missing file", filepath.Join(dir, "nope.pem"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePublicKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePublicKey err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	if _, err := ParsePrivateKey(TestPublicKeyPEM()); err != ErrInvalidKey {
		t.Errorf("ParsePrivateKey(public key) err = %v, want ErrInvalidKey", err)
	}
	if _, err := ParsePrivateKey("-----BEGIN nonsense"); err != ErrInvalidKey {
		t.Errorf("ParsePrivateKey(garbage) err = %v, want ErrInvalidKey", err)
	}
}
