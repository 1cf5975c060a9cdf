package everafter

import "reflect"

// inputID is an opaque numeric identity, unique within one (value-type,
// kind) bucket of the registry.
type inputID uint64

// idKind routes a read to the right sub-registry and evaluation strategy.
type idKind uint8

const (
	kindCell idKind = iota
	kindDerived
	kindFunction
	kindList // reserved, unimplemented
)

func (k idKind) String() string {
	switch k {
	case kindCell:
		return "cell"
	case kindDerived:
		return "derived"
	case kindFunction:
		return "function"
	case kindList:
		return "list"
	default:
		return "unknown"
	}
}

// TypedInputId is a handle to a reactive node of value type T. It carries
// its kind at runtime (cell/derived/function/list) rather than as a
// second static type parameter: every read is already routed dynamically
// by kind (see Value), so a second compile-time tag would buy nothing
// a language without Rust's trait-bound dispatch can use for free.
type TypedInputId[T any] struct {
	id   inputID
	kind idKind
}

// DynId erases a TypedInputId's value type to a runtime type tag,
// carrying enough identity to downcast back and to name both sides of a
// mismatch in a diagnostic.
type DynId struct {
	id   inputID
	kind idKind
	typ  reflect.Type
}

// dynID erases id's value type.
func dynID[T any](id TypedInputId[T]) DynId {
	return DynId{
		id:   id.id,
		kind: id.kind,
		typ:  reflect.TypeFor[T](),
	}
}

// downcastDynID recovers a TypedInputId[T] from a DynId, panicking by
// name if T does not match the type the DynId was erased from.
func downcastDynID[T any](d DynId) TypedInputId[T] {
	want := reflect.TypeFor[T]()
	if d.typ != want {
		panicf("can't downcast a DynId of %s to %s", d.typ, want)
	}

	return TypedInputId[T]{id: d.id, kind: d.kind}
}
