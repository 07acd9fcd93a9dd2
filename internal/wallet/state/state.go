package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/cosmos-wallet/internal/wallet/ecdsa"
	"github/chapool/cosmos-wallet/internal/wallet/store"
)

var (
	ErrNotInitialized          = errors.New("state not initialized")
	ErrMissingBroadcastService = errors.New("missing broadcast service id")
	ErrInvalidKey              = errors.New("invalid ecdsa key")
)

// DefaultKey is used when no key is configured at init.
var DefaultKey = ecdsa.TestKey1

// InitArgs configure the wallet at first start and override restored values
// after a restart. Nil fields are absent.
type InitArgs struct {
	BroadcastServiceID *string `json:"broadcast_service_id,omitempty"`
	ECDSAKey           *string `json:"ecdsa_key,omitempty"`
}

// State is the wallet configuration shared by every request.
type State struct {
	BroadcastServiceID string    `json:"broadcast_service_id"`
	ECDSAKey           ecdsa.Key `json:"ecdsa_key"`
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Broadcast service: %s\n", s.BroadcastServiceID)
	fmt.Fprintf(&b, "ECDSA key: %s\n", s.ECDSAKey)
	return b.String()
}

// Encode returns the opaque snapshot form of s.
func (s State) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode state")
	}

	return data, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, errors.Wrap(err, "failed to decode state")
	}

	if s.BroadcastServiceID == "" {
		return State{}, errors.Wrap(ErrMissingBroadcastService, "snapshot")
	}

	return s, nil
}

// Container owns the single State instance. Every accessor runs under the
// container lock, so callbacks must not call back into the container.
type Container struct {
	mu    sync.RWMutex
	state *State
}

func NewContainer() *Container {
	return &Container{}
}

// Init builds the state from args. The broadcast service id is mandatory,
// the key falls back to DefaultKey when absent or empty. An empty name never
// becomes a custom key here, unlike ParseKey("").
func (c *Container) Init(args InitArgs) error {
	serviceID := swag.StringValue(args.BroadcastServiceID)
	if serviceID == "" {
		return ErrMissingBroadcastService
	}

	key := DefaultKey
	if name := swag.StringValue(args.ECDSAKey); name != "" {
		key = ecdsa.ParseKey(name)
	}

	c.Replace(State{
		BroadcastServiceID: serviceID,
		ECDSAKey:           key,
	})

	return nil
}

// Initialized reports whether a state instance exists.
func (c *Container) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state != nil
}

// Read calls fn with a copy of the state.
func (c *Container) Read(fn func(s State)) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state == nil {
		return ErrNotInitialized
	}

	fn(*c.state)
	return nil
}

// Get returns a copy of the state.
func (c *Container) Get() (State, error) {
	var out State
	err := c.Read(func(s State) { out = s })
	return out, err
}

// Mutate calls fn with a working copy of the state and commits it only when
// fn returns nil.
func (c *Container) Mutate(fn func(s *State) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return ErrNotInitialized
	}

	working := *c.state
	if err := fn(&working); err != nil {
		return err
	}

	c.state = &working
	return nil
}

// Replace installs s as the current state.
func (c *Container) Replace(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = &s
}

// Take removes and returns the state, leaving the container uninitialized.
func (c *Container) Take() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return State{}, ErrNotInitialized
	}

	s := *c.state
	c.state = nil
	return s, nil
}

// PreUpgrade takes the state and saves it to st. If saving fails the state
// is put back so the process can keep serving.
func (c *Container) PreUpgrade(ctx context.Context, st store.Store) error {
	s, err := c.Take()
	if err != nil {
		return err
	}

	data, err := s.Encode()
	if err == nil {
		err = st.Save(ctx, data)
	}

	if err != nil {
		c.Replace(s)
		return errors.Wrap(err, "failed to save state")
	}

	log.Info().Str("broadcast_service_id", s.BroadcastServiceID).Str("key", s.ECDSAKey.String()).Msg("State saved for restart")

	return nil
}

// PostUpgrade restores the state saved by PreUpgrade and applies the fields
// present in overrides. An empty key override is rejected and nothing is
// installed, where ParseKey("") would yield an unnamed custom key.
func (c *Container) PostUpgrade(ctx context.Context, st store.Store, overrides *InitArgs) error {
	data, err := st.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to restore state")
	}

	s, err := Decode(data)
	if err != nil {
		return errors.Wrap(err, "failed to restore state")
	}

	if overrides != nil {
		if overrides.BroadcastServiceID != nil {
			if *overrides.BroadcastServiceID == "" {
				return errors.Wrap(ErrMissingBroadcastService, "override")
			}
			s.BroadcastServiceID = *overrides.BroadcastServiceID
		}

		if overrides.ECDSAKey != nil {
			if *overrides.ECDSAKey == "" {
				return errors.Wrap(ErrInvalidKey, "empty key name")
			}
			s.ECDSAKey = ecdsa.ParseKey(*overrides.ECDSAKey)
		}
	}

	c.Replace(s)

	log.Info().Str("broadcast_service_id", s.BroadcastServiceID).Str("key", s.ECDSAKey.String()).Msg("State restored")

	return nil
}
