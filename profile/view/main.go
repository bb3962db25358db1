// Profiling:
// go build ./profile/view
// go tool pprof -http=":8000" -nodefraction=0.001 ./view cpu.pprof

package main

import (
	"github.com/ferrindae/kodama"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run exercises the conjunctive-view hot path: a three-way intersection swept
// with the cursor form over a stable world.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := kodama.NewWorld()
		for i := 0; i < numEntities; i++ {
			e := w.CreateEntity()
			kodama.Assign(w, e, comp1{V: int64(i)})
			if i%2 == 0 {
				kodama.Assign(w, e, comp2{V: 2})
			}
			if i%3 == 0 {
				kodama.Assign(w, e, comp3{V: 3})
			}
		}

		view := kodama.NewView3[comp1, comp2, comp3](w)
		for it := 0; it < iters; it++ {
			view.Reset()
			for view.Next() {
				a, b, c := view.Get()
				a.V += b.V + c.V
				a.W += b.W + c.W
			}
		}
	}
}
