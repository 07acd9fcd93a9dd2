package keystore

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// Decrypt opens a keystore sealed by Encrypt.
func Decrypt(ks *KeystoreJSON, password string) (string, error) {
	salt, err := hex.DecodeString(ks.Crypto.KDFParams.Salt)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode salt")
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(ks.Crypto.CipherParams.IV)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode IV")
	}

	ciphertext, err := hex.DecodeString(ks.Crypto.Ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ciphertext")
	}

	expectedMAC, err := hex.DecodeString(ks.Crypto.MAC)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode MAC")
	}

	derivedKey, err := scrypt.Key(
		[]byte(password),
		salt,
		ks.Crypto.KDFParams.N,
		ks.Crypto.KDFParams.R,
		ks.Crypto.KDFParams.P,
		ks.Crypto.KDFParams.DKLen,
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive key")
	}

	if subtle.ConstantTimeCompare(mac(derivedKey[16:32], ciphertext), expectedMAC) != 1 {
		return "", ErrInvalidPassword
	}

	plaintext, err := aes128CTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt mnemonic")
	}

	return string(plaintext), nil
}
