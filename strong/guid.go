package strong

import (
	"bytes"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type guidKind struct{}

func (guidKind) name() string { return "guid" }
func (guidKind) equal(a, b uuid.UUID) bool { return a == b }
func (guidKind) compare(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) }
func (guidKind) format(v uuid.UUID) string { return v.String() }
func (guidKind) text(v uuid.UUID) string { return v.String() }
func (guidKind) native(v uuid.UUID) any { return v.String() }
func (guidKind) hashKey(v uuid.UUID) string { return string(v[:]) }

// parse accepts the hyphenated, braced, urn and compact forms.
func (guidKind) parse(s string) (uuid.UUID, error) {
	v, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, parseError("guid", s, err)
	}
	return v, nil
}

// Guid is the GUID specialization.
//
//	type UserID struct{ strong.Guid[UserID] }
type Guid[S any] struct {
	Of[uuid.UUID, S, guidKind]
}

// emptyGuids caches the empty value per concrete type.
var emptyGuids sync.Map

// EmptyGuid returns the all-zero value of S. Repeated calls for the same
// type return the same cached value.
func EmptyGuid[S any, PS Setter[S, uuid.UUID]]() S {
	key := reflect.TypeFor[S]()
	if v, ok := emptyGuids.Load(key); ok {
		return v.(S)
	}
	v, _ := emptyGuids.LoadOrStore(key, From[S, uuid.UUID, PS](uuid.Nil))
	return v.(S)
}

// NewGuid returns S wrapping a random (version 4) GUID.
func NewGuid[S any, PS Setter[S, uuid.UUID]]() S {
	return From[S, uuid.UUID, PS](uuid.New())
}

// NewGuidV7 returns S wrapping a time-ordered (version 7) GUID.
func NewGuidV7[S any, PS Setter[S, uuid.UUID]]() (S, error) {
	v, err := uuid.NewV7()
	if err != nil {
		var zero S
		return zero, err
	}
	return From[S, uuid.UUID, PS](v), nil
}

// UUID returns the wrapped identifier.
func (g Guid[S]) UUID() uuid.UUID {
	return g.value
}

// IsEmpty reports whether the identifier is all zeros.
func (g Guid[S]) IsEmpty() bool {
	return g.value == uuid.Nil
}

// Version returns the identifier's version number.
func (g Guid[S]) Version() int {
	return int(g.value.Version())
}
