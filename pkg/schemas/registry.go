/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

// Package schemas holds the process-wide association between concrete model
// class identities and their validated JSON schema fragments. The registry is
// populated once at startup and read-only thereafter; lookups are safe to run
// concurrently with late registrations.
package schemas

import (
	"encoding/json"
	"io/fs"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/openehr-go/foundation/pkg/basetypes"
)

// Binding associates a concrete model class identity with a validated JSON
// schema fragment. Validation of serialized forms against the fragment is the
// host's concern, not this module's.
type Binding struct {
	Type    basetypes.QName
	Version string
	Schema  json.RawMessage
}

// Registry is the schema binding lookup table consulted by the serialization
// capability.
type Registry struct {
	mu       sync.RWMutex
	bindings map[basetypes.QName]Binding
}

func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[basetypes.QName]Binding),
	}
}

// Register adds a binding. The binding type must be a valid qualified name
// and the schema must be syntactically valid JSON; a duplicate type fails
// with ErrAlreadyExistsError.
func (r *Registry) Register(b Binding) error {
	if b.Type == basetypes.NullQName {
		return basetypes.ErrInvalid("binding type is empty")
	}
	if ok, err := basetypes.ValidQName(b.Type); !ok {
		return err
	}
	if !json.Valid(b.Schema) {
		return basetypes.ErrInvalid("schema for «%v» is not valid JSON", b.Type)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.bindings[b.Type]; dup {
		return basetypes.ErrAlreadyExists("binding for «%v»", b.Type)
	}
	r.bindings[b.Type] = b
	return nil
}

// Registers a binding.
//
// # Panics:
//   - if the binding is invalid or a duplicate
func (r *Registry) MustRegister(b Binding) {
	if err := r.Register(b); err != nil {
		panic(err)
	}
}

// Lookup returns the binding for the given concrete type identity, if any.
func (r *Registry) Lookup(t basetypes.QName) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[t]
	return b, ok
}

// Types returns the bound type identities, sorted.
func (r *Registry) Types() []basetypes.QName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tt := make([]basetypes.QName, 0, len(r.bindings))
	for t := range r.bindings {
		tt = append(tt, t)
	}
	slices.SortFunc(tt, func(a, b basetypes.QName) bool {
		return basetypes.CompareQName(a, b) < 0
	})
	return tt
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// SchemaFileSuffix names binding files loadable by LoadDir: the part before
// the suffix is the qualified type name, e.g. "foundation.TerminologyTerm.schema.json".
const SchemaFileSuffix = ".schema.json"

// LoadDir registers every *.schema.json file of the file system root into
// the registry and returns how many bindings were added.
func LoadDir(fsys fs.FS, r *Registry) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, err
	}
	added := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), SchemaFileSuffix) {
			continue
		}
		t, err := basetypes.ParseQName(strings.TrimSuffix(e.Name(), SchemaFileSuffix))
		if err != nil {
			return added, err
		}
		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return added, err
		}
		if err := r.Register(Binding{Type: t, Schema: raw}); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
