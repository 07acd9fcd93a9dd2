package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Exists reports whether a keystore file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrapf(err, "failed to stat keystore %s", path)
}

// Save writes ks to path, readable by the owner only. An existing keystore
// is never overwritten.
func Save(path string, ks *KeystoreJSON) error {
	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	//nolint:mnd // owner only directory
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}

	//nolint:mnd // owner only file
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return errors.Wrapf(err, "failed to create keystore %s", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "failed to write keystore")
	}

	return nil
}

// Load reads the keystore at path.
func Load(path string) (*KeystoreJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	var ks KeystoreJSON
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, errors.Wrap(err, "failed to parse keystore")
	}

	return &ks, nil
}
