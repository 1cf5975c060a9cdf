package everafter

import "reflect"

// cell is a stored value plus its owning cellTag.
type cell[T any] struct {
	value T
	tag   *cellTag
}

func newCell[T any](value T, revision Revision) *cell[T] {
	return &cell[T]{value: value, tag: newCellTag(revision)}
}

// read clones out the current value.
func (c *cell[T]) read() T {
	return c.value
}

// update must not be called during a render transaction.
func (c *cell[T]) update(value T, revision Revision) {
	c.value = value
	c.tag.update(revision)
}

// derived is a boxed closure over an EvaluationContext plus its owning
// derivedTag. The closure is invoked verbatim; it may call back into
// Value(ctx, id) for any other reactive node.
type derived[T any] struct {
	compute func(ctx *EvaluationContext) T
	tag     *derivedTag
}

func newDerived[T any](compute func(ctx *EvaluationContext) T) *derived[T] {
	return &derived[T]{compute: compute, tag: newDerivedTag()}
}

// DynamicFunction is the erased, shareable code of a reactive function: a
// code pointer from (EvaluationContext, DynId) to T, plus the identity of
// the argument type it expects. Instantiating it against a specific
// TypedInputId[Arg] (via SetupTransaction's Function) produces a
// functionInstance with its own identity and dependency tag, so the same
// code can be reused against many argument nodes without duplicating the
// body.
type DynamicFunction[T any] struct {
	argType reflect.Type
	code    func(ctx *EvaluationContext, arg DynId) T
}

// NewDynamicFunction builds a DynamicFunction from its erased code and the
// reflect.Type of the argument it expects to downcast. Most callers want
// the friendlier Func instead.
func NewDynamicFunction[T any](argType reflect.Type, code func(ctx *EvaluationContext, arg DynId) T) DynamicFunction[T] {
	return DynamicFunction[T]{argType: argType, code: code}
}

// functionInstance binds a DynamicFunction's code to one specific
// argument id, with its own owning derivedTag.
type functionInstance[T any] struct {
	code DynamicFunction[T]
	arg  DynId
	tag  *derivedTag
}

func newFunctionInstance[T any](code DynamicFunction[T], arg DynId) *functionInstance[T] {
	return &functionInstance[T]{code: code, arg: arg, tag: newDerivedTag()}
}

func (f *functionInstance[T]) call(ctx *EvaluationContext) T {
	return f.code.code(ctx, f.arg)
}
