// Package everafter implements a reactive computation engine: a
// graph-structured runtime for values that change over logical time.
//
// Clients register input cells (externally mutable leaf values), derived
// nodes (pure functions of other reactive values), and functions (curried
// derived nodes sharing a code body across per-instance argument
// bindings). Clients then publish outputs, external sinks that are
// re-synchronized with the graph on demand.
//
// Dependency tracking is automatic: a derived node never declares its
// inputs. They are recorded by the act of reading them during evaluation,
// via a scoped dependency-capture stack held by the EvaluationContext.
//
// # Transactions
//
// All mutation and evaluation happens inside one of three transaction
// shapes, each with exclusive access to the Timeline for its duration:
//
//	setup := timeline.Setup()
//	c := Cell(setup, 1)
//	d := Derived(setup, func(ctx *EvaluationContext) int { return Value(ctx, c) + 1 })
//	setup.Commit()
//
//	out := Output(timeline, d)
//
//	render := timeline.Begin()
//	out.Update(render)
//	render.Commit()
//
//	fmt.Println(out.Value()) // 2
//
// # Change detection
//
// There is no value-level memoization. A derived's freshness is
// determined solely by comparing its tag's revision (the max over its
// captured dependency tags, recursively) to a consumer's last-seen
// revision. The engine favors simplicity — pull on demand, always
// recompute — over precise diffing.
//
// # Concurrency
//
// A Timeline is owned exclusively by the transaction that has it open.
// Opening a second transaction before the first commits, whether from the
// same goroutine or another, panics.
package everafter
