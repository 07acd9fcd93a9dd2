package localsigner

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/wallet/keystore"
	"github/chapool/cosmos-wallet/internal/wallet/seed"
	"golang.org/x/term"
)

var ErrMnemonicRequired = errors.New("local signer mnemonic is required")

// KeystoreParams are the scrypt parameters used when sealing a new keystore.
var KeystoreParams = keystore.DefaultScryptParams()

// Credentials select where the local signer mnemonic comes from. The
// passphrase doubles as the keystore password.
type Credentials struct {
	Mnemonic     string
	Passphrase   string
	KeystorePath string
}

// Unlock initializes seedManager. An existing keystore at KeystorePath takes
// precedence over Mnemonic; otherwise the mnemonic is sealed into a new
// keystore when a path is given. Missing secrets are read from the terminal
// when stdin is one.
func Unlock(seedManager seed.Manager, creds Credentials) error {
	mnemonic, passphrase := creds.Mnemonic, creds.Passphrase

	if creds.KeystorePath != "" {
		exists, err := keystore.Exists(creds.KeystorePath)
		if err != nil {
			return err
		}

		if exists {
			mnemonic, passphrase, err = openKeystore(creds.KeystorePath, passphrase)
			if err != nil {
				return err
			}

			return initialize(seedManager, mnemonic, passphrase)
		}
	}

	if mnemonic == "" {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return ErrMnemonicRequired
		}

		var err error
		mnemonic, err = promptSecret(fd, "Enter local signer mnemonic: ")
		if err != nil {
			return err
		}

		passphrase, err = promptSecret(fd, "Enter passphrase (may be empty): ")
		if err != nil {
			return err
		}
	}

	if err := initialize(seedManager, mnemonic, passphrase); err != nil {
		return err
	}

	if creds.KeystorePath != "" {
		ks, err := keystore.Encrypt(mnemonic, passphrase, KeystoreParams)
		if err != nil {
			return err
		}

		if err := keystore.Save(creds.KeystorePath, ks); err != nil {
			return err
		}

		log.Info().Str("path", creds.KeystorePath).Str("id", ks.ID).Msg("Local signer keystore created")
	}

	return nil
}

func openKeystore(path string, passphrase string) (string, string, error) {
	ks, err := keystore.Load(path)
	if err != nil {
		return "", "", err
	}

	if passphrase == "" {
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			passphrase, err = promptSecret(fd, "Enter keystore password: ")
			if err != nil {
				return "", "", err
			}
		}
	}

	mnemonic, err := keystore.Decrypt(ks, passphrase)
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to open keystore %s", path)
	}

	return mnemonic, passphrase, nil
}

func initialize(seedManager seed.Manager, mnemonic string, passphrase string) error {
	if err := seedManager.Initialize(mnemonic, passphrase); err != nil {
		return errors.Wrap(err, "failed to initialize seed manager")
	}

	log.Info().Msg("Local signer unlocked")

	return nil
}

// promptSecret reads a line from the terminal without echoing it.
//
//nolint:forbidigo // Secret input requires direct terminal I/O
func promptSecret(fd int, prompt string) (string, error) {
	fmt.Print(prompt)

	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read from terminal")
	}

	fmt.Println()

	return string(b), nil
}
