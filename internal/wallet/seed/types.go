package seed

// Manager holds the master seed of the local development signer
type Manager interface {
	// Initialize stretches the mnemonic and passphrase into the seed
	Initialize(mnemonic string, passphrase string) error

	// GetSeed gets a copy of the seed, nil before initialization
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear wipes the seed from memory
	Clear()
}
