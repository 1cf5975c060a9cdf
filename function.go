package everafter

import "reflect"

// Func builds a DynamicFunction[T] from a body that already receives its
// argument as a plain Arg, handling the downcast-then-read step every
// function body must otherwise perform itself (ctx.value(arg.downcast())
// per the function-body contract). It stands in for the external
// function-builder collaborator's generated code in a language with no
// macros: the wrapper below is exactly what that code would expand to for
// a single argument. Multi-argument functions compose by nesting derived
// calls, the same way a function of a function does.
func Func[T, Arg any](body func(ctx *EvaluationContext, arg Arg) T) DynamicFunction[T] {
	return NewDynamicFunction[T](reflect.TypeFor[Arg](), func(ctx *EvaluationContext, dyn DynId) T {
		argID := downcastDynID[Arg](dyn)
		arg := Value(ctx, argID)
		return body(ctx, arg)
	})
}
