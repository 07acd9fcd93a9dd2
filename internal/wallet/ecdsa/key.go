package ecdsa

type keyKind uint8

const (
	kindCustom keyKind = iota
	kindTestKeyLocalDevelopment
	kindTestKey1
	kindProductionKey1
)

const (
	tokenTestKeyLocalDevelopment = "dfx_test_key"
	tokenTestKey1                = "test_key_1"
	tokenProductionKey1          = "key_1"
)

// Key selects which threshold key configuration the signer uses.
// The zero value is the custom key with an empty name.
type Key struct {
	kind   keyKind
	custom string
}

var (
	// TestKeyLocalDevelopment is the key of a local development replica.
	TestKeyLocalDevelopment = Key{kind: kindTestKeyLocalDevelopment}
	// TestKey1 is the shared test key.
	TestKey1 = Key{kind: kindTestKey1}
	// ProductionKey1 is the production key.
	ProductionKey1 = Key{kind: kindProductionKey1}
)

// ParseKey never fails: unknown names are kept as custom keys.
func ParseKey(s string) Key {
	switch s {
	case tokenTestKeyLocalDevelopment:
		return TestKeyLocalDevelopment
	case tokenTestKey1:
		return TestKey1
	case tokenProductionKey1:
		return ProductionKey1
	default:
		return Key{kind: kindCustom, custom: s}
	}
}

// Custom returns the key named name. Reserved names map to their named key.
func Custom(name string) Key {
	return ParseKey(name)
}

// IsCustom reports whether k is not one of the named keys.
func (k Key) IsCustom() bool {
	return k.kind == kindCustom
}

func (k Key) String() string {
	switch k.kind {
	case kindTestKeyLocalDevelopment:
		return tokenTestKeyLocalDevelopment
	case kindTestKey1:
		return tokenTestKey1
	case kindProductionKey1:
		return tokenProductionKey1
	default:
		return k.custom
	}
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	*k = ParseKey(string(text))
	return nil
}

// ID returns the key identifier sent to the signing service.
func (k Key) ID() KeyID {
	return KeyID{
		Curve: CurveSecp256k1,
		Name:  k.String(),
	}
}
