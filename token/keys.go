package token

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// Keypair holds the RSA signing keypair loaded at process start.
// The key material is read-only after construction and never leaves
// this package; it is safe to share across concurrent requests.
type Keypair struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// LoadKeypair reads and parses the PEM-encoded private (PKCS#8) and
// public (PKIX) keys. Any failure here is fatal to the caller: the
// process must not serve traffic without a working keypair.
func LoadKeypair(privateKeyPath, publicKeyPath string) (*Keypair, error) {
	private, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load private key %s: %w", privateKeyPath, err)
	}

	public, err := loadPublicKey(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load public key %s: %w", publicKeyPath, err)
	}

	return &Keypair{private: private, public: public}, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		// Some tooling emits PKCS#1 ("RSA PRIVATE KEY") instead
		if rsaKey, err1 := x509.ParsePKCS1PrivateKey(block.Bytes); err1 == nil {
			return rsaKey, nil
		}
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, expected RSA", key)
	}

	return rsaKey, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, expected RSA", key)
	}

	return rsaKey, nil
}
