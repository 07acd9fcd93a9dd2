package seed

import (
	"crypto/sha512"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 2048 // BIP39 standard iterations
	pbkdf2KeyLength  = 64   // BIP39 standard key length (512 bits)
)

var ErrEmptyMnemonic = errors.New("mnemonic must not be empty")

type manager struct {
	mu   sync.RWMutex
	seed []byte
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{}
}

// Initialize derives the seed the BIP39 way:
// PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
func (m *manager) Initialize(mnemonic string, passphrase string) error {
	words := strings.Fields(mnemonic)
	if len(words) == 0 {
		return ErrEmptyMnemonic
	}

	seed := pbkdf2.Key(
		[]byte(strings.Join(words, " ")),
		[]byte("mnemonic"+passphrase),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	)

	m.mu.Lock()
	defer m.mu.Unlock()

	wipe(m.seed)
	m.seed = seed

	return nil
}

func (m *manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.seed == nil {
		return nil
	}

	out := make([]byte, len(m.seed))
	copy(out, m.seed)
	return out
}

func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.seed != nil
}

func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wipe(m.seed)
	m.seed = nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
