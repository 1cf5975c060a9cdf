package everafter

// PrimitiveOutput is an external sink: a cache pulled from a reactive
// node only when Update is called, never recomputed spontaneously. It
// has no tag of its own — nothing downstream can depend on an output.
type PrimitiveOutput[T any] struct {
	id    TypedInputId[T]
	cache *T
}

// Update re-reads id through render's evaluation context and stores the
// result, replacing whatever was cached before.
func (o *PrimitiveOutput[T]) Update(render *RenderTransaction) {
	v := RenderValue(render, o.id)
	o.cache = &v
}

// Value returns the cached value from the most recent Update. It panics
// if Update has never been called.
func (o *PrimitiveOutput[T]) Value() T {
	if o.cache == nil {
		panicf("read a primitive output before its first update")
	}
	return *o.cache
}
