// Command example demonstrates a small reactive graph: two cells, a
// derived sum, a function instance sharing code across two arguments,
// and an output refreshed across two renders.
package main

import (
	"fmt"

	"github.com/AnatoleLucet/everafter"
)

func main() {
	timeline := everafter.NewTimeline()

	setup := timeline.Setup()
	a := everafter.Cell(setup, 1)
	b := everafter.Cell(setup, 2)

	sum := everafter.Derived(setup, func(ctx *everafter.EvaluationContext) int {
		result := everafter.Value(ctx, a) + everafter.Value(ctx, b)
		fmt.Println("  [derived] computing sum:", result)
		return result
	})

	double := everafter.Func(func(ctx *everafter.EvaluationContext, n int) int {
		return n * 2
	})
	doubleA := everafter.Function(setup, double, a)
	doubleB := everafter.Function(setup, double, b)
	setup.Commit()

	render := timeline.Begin()
	out := everafter.Output(timeline, sum)
	out.Update(render)
	fmt.Println("sum:", out.Value())
	fmt.Println("doubleA:", everafter.RenderValue(render, doubleA))
	fmt.Println("doubleB:", everafter.RenderValue(render, doubleB))
	render.Commit()

	fmt.Println("\nupdating a to 10...")
	update := timeline.Update()
	everafter.UpdateCell(update, a, 10)
	update.Commit()

	render = timeline.Begin()
	out.Update(render)
	fmt.Println("sum:", out.Value())
	render.Commit()
}
