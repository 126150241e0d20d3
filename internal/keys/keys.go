// Package keys turns PEM-encoded key material into crypto key handles
// usable by the signing methods. Keys are parsed per call; nothing is
// cached, so fresh key bytes always take effect on the next operation.
package keys

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

var (
	errNoPEMBlock = errors.New("no PEM block found in key material")
)

// decodeBlock extracts the first PEM block from the given bytes.
func decodeBlock(pemBytes []byte) (*pem.Block, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errNoPEMBlock
	}
	return block, nil
}

// ParseRSAPrivateKey parses a PEM encoded RSA private key in PKCS#1 or
// PKCS#8 form.
func ParseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, err := decodeBlock(pemBytes)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA private key: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("PEM block contains %T, not an RSA private key", parsed)
	}

	return key, nil
}

// ParseRSAPublicKey parses a PEM encoded RSA public key. It accepts PKIX
// public keys, PKCS#1 public keys, and certificates carrying an RSA key.
func ParseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, err := decodeBlock(pemBytes)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	var parsed any
	parsed, err = x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		cert, certErr := x509.ParseCertificate(block.Bytes)
		if certErr != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		parsed = cert.PublicKey
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("PEM block contains %T, not an RSA public key", parsed)
	}

	return key, nil
}

// ParseECDSAPrivateKey parses a PEM encoded ECDSA private key in SEC 1 or
// PKCS#8 form.
func ParseECDSAPrivateKey(pemBytes []byte) (*ecdsa.PrivateKey, error) {
	block, err := decodeBlock(pemBytes)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ECDSA private key: %w", err)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("PEM block contains %T, not an ECDSA private key", parsed)
	}

	return key, nil
}

// ParseECDSAPublicKey parses a PEM encoded ECDSA public key. It accepts
// PKIX public keys and certificates carrying an ECDSA key.
func ParseECDSAPublicKey(pemBytes []byte) (*ecdsa.PublicKey, error) {
	block, err := decodeBlock(pemBytes)
	if err != nil {
		return nil, err
	}

	var parsed any
	parsed, err = x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		cert, certErr := x509.ParseCertificate(block.Bytes)
		if certErr != nil {
			return nil, fmt.Errorf("failed to parse ECDSA public key: %w", err)
		}
		parsed = cert.PublicKey
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("PEM block contains %T, not an ECDSA public key", parsed)
	}

	return key, nil
}
