package everafter

// EvaluationContext is the scoped dependency-capture stack through which
// a derived or function body reads other reactive nodes. Each nested read
// records the accessed node's tag into the current top-of-stack frame;
// top-level reads (from an output, outside any derived) are allowed and
// simply uncaptured.
type EvaluationContext struct {
	stack    []*derivedTag
	registry *registry
}

func newEvaluationContext(r *registry) *EvaluationContext {
	return &EvaluationContext{registry: r}
}

func (ctx *EvaluationContext) push(tag *derivedTag) {
	ctx.stack = append(ctx.stack, tag)
}

func (ctx *EvaluationContext) pop() *derivedTag {
	n := len(ctx.stack)
	if n == 0 {
		panicf("popped an evaluation context frame without pushing one")
	}

	tag := ctx.stack[n-1]
	ctx.stack = ctx.stack[:n-1]
	return tag
}

func (ctx *EvaluationContext) consume(tag reactiveTag) {
	if n := len(ctx.stack); n > 0 {
		ctx.stack[n-1].addDep(tag)
	}
}

// Value reads the reactive node id refers to, routing by its kind:
//   - a cell's tag is recorded and its value cloned out,
//   - a derived is re-entered and recomputed (see enterDerived),
//   - a function instance is re-entered and invoked through the same
//     protocol, with its bound code as the body (see enterDerived),
//   - list is reserved and unimplemented.
func Value[T any](ctx *EvaluationContext, id TypedInputId[T]) T {
	switch id.kind {
	case kindCell:
		bucket := bucketForRead[T](ctx.registry)
		c := bucket.getCell(id.id)
		ctx.consume(c.tag)
		return c.read()

	case kindDerived:
		bucket := bucketForRead[T](ctx.registry)
		d := bucket.getDerived(id.id)
		return enterDerived(ctx, d.tag, d.compute)

	case kindFunction:
		bucket := bucketForRead[T](ctx.registry)
		f := bucket.getFunction(id.id)
		return enterDerived(ctx, f.tag, f.call)

	case kindList:
		panicf("list inputs are not implemented")
		panic("unreachable")

	default:
		panicf("unknown input kind %s", id.kind)
		panic("unreachable")
	}
}

// enterDerived runs the derived re-evaluation protocol:
//  1. reset the tag (enter Modifying, clearing prior deps) — the only
//     place a tag is rebuilt;
//  2. push the tag as the new top frame;
//  3. invoke the body, which records a dependency for every nested read;
//  4. pop the frame, so the tag is no longer the top of its own stack;
//  5. return to Idle;
//  6. consume the tag itself into the now-current (enclosing) frame, so
//     callers depend on this node as one unit rather than on its
//     transitive deps;
//  7. return the computed value.
//
// A panic inside body aborts the containing transaction; the defer below
// still pops the frame (if body hasn't already) and force-releases
// Modifying so the tag remains usable if the transaction is recovered by
// the caller.
func enterDerived[T any](ctx *EvaluationContext, tag *derivedTag, body func(*EvaluationContext) T) (result T) {
	tag.reset()
	ctx.push(tag)

	completed := false
	defer func() {
		if !completed {
			ctx.pop()
			tag.abort()
		}
	}()

	result = body(ctx)
	ctx.pop()
	tag.done()
	completed = true
	ctx.consume(tag)

	return result
}
