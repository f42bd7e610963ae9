package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"time"
)

// Issuer and audience used by NewTestTokenProvider.
const (
	TestIssuer   = "test-issuer"
	TestAudience = "test-audience"
)

var (
	testKeysOnce sync.Once
	testPrivPEM  string
	testPubPEM   string
	testKeysErr  error
)

// testKeys generates one RSA key pair per process and returns it PEM-encoded (PKCS#8 / PKIX).
func testKeys() (privPEM, pubPEM string, err error) {
	testKeysOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			testKeysErr = err
			return
		}
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			testKeysErr = err
			return
		}
		pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			testKeysErr = err
			return
		}
		testPrivPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
		testPubPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	})
	return testPrivPEM, testPubPEM, testKeysErr
}

// NewTestTokenProvider returns a TokenProvider over a key pair generated for the test process.
// For tests only.
func NewTestTokenProvider() (*TokenProvider, error) {
	privPEM, _, err := testKeys()
	if err != nil {
		return nil, err
	}
	signer, err := ParsePrivateKey(privPEM)
	if err != nil {
		return nil, err
	}
	return NewTokenProvider(signer, TestIssuer, TestAudience, 15*time.Minute)
}

// TestPublicKeyPEM returns the public half of the test key pair.
func TestPublicKeyPEM() string {
	_, pubPEM, _ := testKeys()
	return pubPEM
}
