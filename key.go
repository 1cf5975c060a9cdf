package everafter

// Uint128 is a 128-bit unsigned number represented as two 64-bit halves.
// Unlike math/big.Int it is a plain comparable value, usable directly as
// a map key and inside Key without indirection.
type Uint128 struct {
	Hi, Lo uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit halves.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// Key is a value object carrying an optional string and/or an optional
// 128-bit number. Items that belong in keyed collections expose one via
// GetReactiveKey. The core stores Keys but does not implement list
// membership; the contract is reserved for the (unimplemented) list kind.
type Key struct {
	hasString bool
	str       string
	hasNumber bool
	number    Uint128
}

// KeyString builds a Key carrying only a string.
func KeyString(s string) Key {
	return Key{hasString: true, str: s}
}

// KeyNumber builds a Key carrying only a number.
func KeyNumber(n Uint128) Key {
	return Key{hasNumber: true, number: n}
}

// KeyPair builds a Key carrying both a string and a number.
func KeyPair(s string, n Uint128) Key {
	return Key{hasString: true, str: s, hasNumber: true, number: n}
}

// String returns the key's string component and whether it is present.
func (k Key) String() (string, bool) {
	return k.str, k.hasString
}

// Number returns the key's numeric component and whether it is present.
func (k Key) Number() (Uint128, bool) {
	return k.number, k.hasNumber
}

// GetReactiveKey is implemented by items that belong in keyed reactive
// collections, exposing a stable identity independent of their value.
type GetReactiveKey interface {
	ReactiveKey() Key
}
