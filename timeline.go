package everafter

import (
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Timeline owns the revision counter and the registry, and mediates all
// mutation and evaluation through three transaction shapes: Setup (add
// cells/deriveds/functions), Update (mutate cells, advance the clock),
// and Begin (render: read through an EvaluationContext).
//
// A Timeline is owned exclusively by whichever transaction currently has
// it open; opening a second transaction before the first commits panics,
// naming the goroutine that holds it and the one that asked.
type Timeline struct {
	revision Revision
	registry *registry

	holder atomic.Int64 // goroutine id currently holding a transaction, 0 if free
}

// NewTimeline creates a Timeline with no registered types and its clock
// at StartRevision.
func NewTimeline() *Timeline {
	return &Timeline{
		revision: StartRevision(),
		registry: newRegistry(),
	}
}

const noHolder int64 = 0

func (tl *Timeline) acquire() {
	gid := goid.Get()
	if !tl.holder.CompareAndSwap(noHolder, gid) {
		holding := tl.holder.Load()
		panicf("a transaction is already in progress on this timeline (held by goroutine %d, requested by goroutine %d)", holding, gid)
	}
}

func (tl *Timeline) release() {
	tl.holder.Store(noHolder)
}

// TimelineRevision returns the current revision associated with id's tag.
// It is None (ok=false) only for a derived or function instance that has
// not yet been evaluated.
func TimelineRevision[T any](tl *Timeline, id TypedInputId[T]) (rev Revision, ok bool) {
	switch id.kind {
	case kindCell:
		bucket := bucketForRead[T](tl.registry)
		return bucket.getCell(id.id).tag.Revision(), true

	case kindDerived:
		bucket := bucketForRead[T](tl.registry)
		tag := bucket.getDerived(id.id).tag
		if !tag.wasEvaluated() {
			return ConstRevision, false
		}
		return tag.Revision(), true

	case kindFunction:
		bucket := bucketForRead[T](tl.registry)
		tag := bucket.getFunction(id.id).tag
		if !tag.wasEvaluated() {
			return ConstRevision, false
		}
		return tag.Revision(), true

	case kindList:
		panicf("list inputs are not implemented")
		panic("unreachable")

	default:
		panicf("unknown input kind %s", id.kind)
		panic("unreachable")
	}
}

// Output constructs a PrimitiveOutput over id with an empty cache; the
// caller must call Update before reading its value.
func Output[T any](tl *Timeline, id TypedInputId[T]) *PrimitiveOutput[T] {
	return &PrimitiveOutput[T]{id: id}
}

// Setup opens a SetupTransaction. Does not advance the clock.
func (tl *Timeline) Setup() *SetupTransaction {
	tl.acquire()
	return &SetupTransaction{timeline: tl, revision: tl.revision}
}

// Update opens an UpdateTransaction.
func (tl *Timeline) Update() *UpdateTransaction {
	tl.acquire()
	return &UpdateTransaction{timeline: tl, revision: tl.revision}
}

// Begin opens a RenderTransaction. The revision is frozen for its
// duration; no cell update is permitted while it is open.
func (tl *Timeline) Begin() *RenderTransaction {
	tl.acquire()
	return &RenderTransaction{
		timeline: tl,
		ctx:      newEvaluationContext(tl.registry),
	}
}

// SetupTransaction adds reactive nodes to a Timeline's registry. A fresh
// cell's tag takes the timeline's current revision; a fresh derived's tag
// is Idle with empty deps (its revision is therefore ConstRevision until
// first evaluated).
type SetupTransaction struct {
	timeline *Timeline
	revision Revision
}

// Commit releases the timeline. Setup never advances the clock.
func (tx *SetupTransaction) Commit() {
	tx.timeline.release()
}

// Cell adds a new cell holding value, returning its id.
func Cell[T any](tx *SetupTransaction, value T) TypedInputId[T] {
	c := newCell(value, tx.revision)
	bucket := bucketForMutate[T](tx.timeline.registry)
	return bucket.addCell(c)
}

// Derived adds a new derived node computed by compute, returning its id.
func Derived[T any](tx *SetupTransaction, compute func(ctx *EvaluationContext) T) TypedInputId[T] {
	d := newDerived(compute)
	bucket := bucketForMutate[T](tx.timeline.registry)
	return bucket.addDerived(d)
}

// Function instantiates code against arg, returning the new function
// instance's id. The same code may be instantiated many times against
// different argument ids without duplicating the body.
func Function[T, Arg any](tx *SetupTransaction, code DynamicFunction[T], arg TypedInputId[Arg]) TypedInputId[T] {
	f := newFunctionInstance(code, dynID(arg))
	bucket := bucketForMutate[T](tx.timeline.registry)
	return bucket.addFunction(f)
}

// UpdateTransaction mutates cells and advances the clock, once per
// update, in the order issued.
type UpdateTransaction struct {
	timeline *Timeline
	revision Revision
}

// Commit writes the advanced revision back to the timeline.
func (tx *UpdateTransaction) Commit() {
	tx.timeline.revision = tx.revision
	tx.timeline.release()
}

func (tx *UpdateTransaction) nextRevision() Revision {
	tx.revision = tx.revision.Increment()
	return tx.revision
}

// UpdateCell increments the clock, then stores (value, new revision) on
// the cell id refers to.
func UpdateCell[T any](tx *UpdateTransaction, id TypedInputId[T], value T) {
	if id.kind != kindCell {
		panicf("can't update a non-cell input id (kind %s)", id.kind)
	}

	revision := tx.nextRevision()
	bucket := bucketForRead[T](tx.timeline.registry)
	bucket.getCell(id.id).update(value, revision)
}

// RenderTransaction hosts an EvaluationContext through which outputs are
// refreshed. The revision is frozen for its duration: no cell update is
// permitted while a render is open.
type RenderTransaction struct {
	timeline *Timeline
	ctx      *EvaluationContext
}

// Commit releases the timeline.
func (tx *RenderTransaction) Commit() {
	tx.timeline.release()
}

// RenderValue reads id through render's evaluation context, capturing a
// dependency if called from within an enclosing derived or function body
// (it never is here, since render.ctx starts with an empty stack — this
// is the top-level entry point a PrimitiveOutput uses).
func RenderValue[T any](tx *RenderTransaction, id TypedInputId[T]) T {
	return Value(tx.ctx, id)
}
