package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// Encrypt seals mnemonic into an Ethereum keystore v3 structure
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func Encrypt(mnemonic string, password string, params ScryptParams) (*KeystoreJSON, error) {
	//nolint:mnd // 32 is the standard salt size for scrypt
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	//nolint:mnd // 16 is the standard IV size for AES-128-CTR
	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	ciphertext, err := aes128CTR(derivedKey[:16], iv, []byte(mnemonic))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}

	ks := &KeystoreJSON{
		//nolint:mnd // 3 is the Ethereum keystore v3 version number
		Version: 3,
		ID:      uuid.New().String(),
	}

	ks.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	ks.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	ks.Crypto.Cipher = "aes-128-ctr"
	ks.Crypto.KDF = "scrypt"
	ks.Crypto.KDFParams.DKLen = params.DKLen
	ks.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	ks.Crypto.KDFParams.N = params.N
	ks.Crypto.KDFParams.R = params.R
	ks.Crypto.KDFParams.P = params.P
	ks.Crypto.MAC = hex.EncodeToString(mac(derivedKey[16:32], ciphertext))

	return ks, nil
}

// aes128CTR encrypts and decrypts, CTR mode being symmetric.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func aes128CTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}

// mac is Keccak-256(derivedKey[16:32] ++ ciphertext) as in keystore v3.
func mac(key []byte, ciphertext []byte) []byte {
	return crypto.Keccak256(key, ciphertext)
}
