// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Access is a set of actions on a collection.
type Access uint8

const (
	AccessRead Access = 1 << iota
	AccessWrite
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessRead | AccessWrite:
		return "read+write"
	default:
		return "none"
	}
}

// Has reports whether every action in other is part of a.
func (a Access) Has(other Access) bool {
	return other != 0 && a&other == other
}

// KeyKind tells which protocol namespace a permission key belongs to.
type KeyKind int

const (
	// KeyByName addresses a legacy collection by its name.
	KeyByName KeyKind = iota
	// KeyByID addresses a modern collection by its UUID.
	KeyByID
)

// PermissionKey identifies the collection an account grant applies to.
// Its kind is decided once, from the key's shape.
type PermissionKey struct {
	Kind KeyKind
	Name string
	ID   uuid.UUID
}

// canonicalUUIDLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLength = 36

// ParsePermissionKey classifies a raw key: a UUID in its canonical
// hyphenated form is a modern key, everything else is a legacy collection
// name. Braced, urn:uuid: and bare-hex spellings stay names.
func ParsePermissionKey(raw string) PermissionKey {
	if len(raw) != canonicalUUIDLength {
		return PermissionKey{Kind: KeyByName, Name: raw}
	}
	if id, err := uuid.Parse(raw); err == nil {
		return PermissionKey{Kind: KeyByID, ID: id}
	}
	return PermissionKey{Kind: KeyByName, Name: raw}
}

// ByID returns the modern key for a collection id.
func ByID(id uuid.UUID) PermissionKey {
	return PermissionKey{Kind: KeyByID, ID: id}
}

// ByName returns the legacy key for a collection name.
func ByName(name string) PermissionKey {
	return PermissionKey{Kind: KeyByName, Name: name}
}

func (k PermissionKey) String() string {
	if k.Kind == KeyByID {
		return k.ID.String()
	}
	return k.Name
}

// LegacyGrant is the scalar permission used by the legacy protocol.
type LegacyGrant string

const (
	LegacyRead   LegacyGrant = "read"
	LegacyModify LegacyGrant = "modify"
)

// GrantKind tells which shape a grant was written in.
type GrantKind int

const (
	GrantLegacy GrantKind = iota
	GrantModern
)

// ErrInvalidGrant is returned for grants that are neither a legacy scalar
// nor a list of modern actions.
var ErrInvalidGrant = errors.New("invalid permission grant")

// Grant is the access an account holds on one collection: either a legacy
// scalar (read or modify) or a modern set of read/write actions.
type Grant struct {
	Kind   GrantKind
	Legacy LegacyGrant
	Modern Access
}

// LegacyGrantOf builds a legacy grant.
func LegacyGrantOf(g LegacyGrant) Grant {
	return Grant{Kind: GrantLegacy, Legacy: g}
}

// ModernGrantOf builds a modern grant.
func ModernGrantOf(a Access) Grant {
	return Grant{Kind: GrantModern, Modern: a}
}

// Access returns the actions the grant allows. Legacy modify implies both
// read and write.
func (g Grant) Access() Access {
	if g.Kind == GrantModern {
		return g.Modern
	}
	switch g.Legacy {
	case LegacyRead:
		return AccessRead
	case LegacyModify:
		return AccessRead | AccessWrite
	default:
		return 0
	}
}

// Allows reports whether the grant includes action.
func (g Grant) Allows(action Access) bool {
	return g.Access().Has(action)
}

func parseLegacyGrant(value string) (Grant, error) {
	switch LegacyGrant(value) {
	case LegacyRead, LegacyModify:
		return LegacyGrantOf(LegacyGrant(value)), nil
	default:
		return Grant{}, fmt.Errorf("%w: legacy grant must be read or modify, got %q", ErrInvalidGrant, value)
	}
}

func parseModernGrant(values []string) (Grant, error) {
	var access Access
	for _, value := range values {
		switch value {
		case "read":
			access |= AccessRead
		case "write":
			access |= AccessWrite
		default:
			return Grant{}, fmt.Errorf("%w: modern grant must contain read or write, got %q", ErrInvalidGrant, value)
		}
	}
	return ModernGrantOf(access), nil
}

func (g Grant) values() []string {
	values := make([]string, 0, 2)
	if g.Modern&AccessRead != 0 {
		values = append(values, "read")
	}
	if g.Modern&AccessWrite != 0 {
		values = append(values, "write")
	}
	return values
}

// MarshalJSON writes legacy grants as a string and modern grants as a list.
func (g Grant) MarshalJSON() ([]byte, error) {
	if g.Kind == GrantLegacy {
		return json.Marshal(string(g.Legacy))
	}
	return json.Marshal(g.values())
}

// UnmarshalJSON accepts either shape.
func (g *Grant) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		parsed, err := parseLegacyGrant(scalar)
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrant, string(data))
	}

	parsed, err := parseModernGrant(list)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// UnmarshalYAML accepts a scalar (legacy) or a sequence (modern).
func (g *Grant) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := parseLegacyGrant(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*g = parsed
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidGrant, err)
		}
		parsed, err := parseModernGrant(list)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*g = parsed
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected a string or a list", node.Line, ErrInvalidGrant)
	}
}

// ErrDuplicatePermissionKey is returned when two raw keys resolve to the same
// collection (e.g. the same UUID written in different case).
var ErrDuplicatePermissionKey = errors.New("duplicate permission key")

// Permissions maps collection keys to grants.
type Permissions map[PermissionKey]Grant

// Keys returns the keys in a stable order: names first, then ids.
func (p Permissions) Keys() []PermissionKey {
	keys := make([]PermissionKey, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b PermissionKey) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})
	return keys
}

// Equal reports whether both maps hold the same grants.
func (p Permissions) Equal(other Permissions) bool {
	if len(p) != len(other) {
		return false
	}
	for key, grant := range p {
		if got, ok := other[key]; !ok || got != grant {
			return false
		}
	}
	return true
}

func permissionsFromRaw(raw map[string]Grant) (Permissions, error) {
	perms := make(Permissions, len(raw))
	for rawKey, grant := range raw {
		key := ParsePermissionKey(rawKey)
		if _, exists := perms[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePermissionKey, key)
		}
		perms[key] = grant
	}
	return perms, nil
}

// MarshalJSON writes the map keyed by the raw key strings, which is the
// format stored in the accounts table.
func (p Permissions) MarshalJSON() ([]byte, error) {
	raw := make(map[string]Grant, len(p))
	for key, grant := range p {
		raw[key.String()] = grant
	}
	return json.Marshal(raw)
}

// UnmarshalJSON reads the stored format.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	var raw map[string]Grant
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	perms, err := permissionsFromRaw(raw)
	if err != nil {
		return err
	}
	*p = perms
	return nil
}

// UnmarshalYAML reads the permissions mapping of a sync document.
func (p *Permissions) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]Grant
	if err := node.Decode(&raw); err != nil {
		return err
	}
	perms, err := permissionsFromRaw(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = perms
	return nil
}
