// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	rounds := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run churns entities and components: create, assign both components, sweep
// with a view, destroy everything. This is the allocation-heavy path of the
// store (map inserts, membership slice growth, remove-event sweeps).
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := kodama.NewWorld()
		for it := 0; it < iters; it++ {
			entities := make([]kodama.Entity, 0, numEntities)
			for n := 0; n < numEntities; n++ {
				e := w.CreateEntity()
				kodama.Assign(w, e, comp1{V: 1})
				kodama.Assign(w, e, comp2{V: 2})
				entities = append(entities, e)
			}
			kodama.NewView2[comp1, comp2](w).Each(func(_ kodama.Entity, a *comp1, b *comp2) {
				a.V += b.V
				a.W += b.W
			})
			for _, e := range entities {
				w.DestroyEntity(e)
			}
		}
	}
}
