package security

import (
	"testing"
	"time"
)

func TestTokenProvider_IssueAndVerify(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, exp, err := p.Issue("auth|123", "alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("token empty")
	}
	if exp.Before(time.Now()) {
		t.Fatal("expires at in the past")
	}

	got, err := p.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.Subject != "auth|123" || got.Email != "alice@example.com" || got.Name != "Alice" {
		t.Errorf("principal = %+v", got)
	}
}

func TestVerifier_PublicKeyOnly(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, err := p.Issue("s", "alice@example.com", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	pub, err := ParsePublicKey(TestPublicKeyPEM())
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	v, err := NewVerifier(pub, TestIssuer, TestAudience)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	if _, err := v.Verify(token); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerify_Rejects(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	privPEM, _, err := testKeys()
	if err != nil {
		t.Fatalf("testKeys: %v", err)
	}
	signer, err := ParsePrivateKey(privPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	otherAudience, err := NewTokenProvider(signer, TestIssuer, "someone-else", time.Minute)
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}
	otherIssuer, err := NewTokenProvider(signer, "rogue", TestAudience, time.Minute)
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}
	expired, err := NewTokenProvider(signer, TestIssuer, TestAudience, -time.Minute)
	if err != nil {
		t.Fatalf("NewTokenProvider: %v", err)
	}

	issue := func(tp *TokenProvider, email string) string {
		tok, _, err := tp.Issue("s", email, "")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		return tok
	}
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid-token"},
		{"wrong audience", issue(otherAudience, "a@example.com")},
		{"wrong issuer", issue(otherIssuer, "a@example.com")},
		{"expired", issue(expired, "a@example.com")},
		{"no email", issue(p, "  ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Verify(tt.token); err != ErrInvalidToken {
				t.Errorf("Verify err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestRoleResolver(t *testing.T) {
	r := NewRoleResolver([]string{" Root@Example.com ", ""})
	tests := map[string]string{
		"root@example.com":   "super_admin",
		"ROOT@example.com ":  "super_admin",
		"alice@example.com":  "user",
		"":                   "user",
	}
	for email, want := range tests {
		if got := string(r.PlatformRole(email)); got != want {
			t.Errorf("PlatformRole(%q) = %q, want %q", email, got, want)
		}
	}
	var nilResolver *RoleResolver
	if got := nilResolver.PlatformRole("root@example.com"); got != "user" {
		t.Errorf("nil resolver role = %q, want user", got)
	}
}
