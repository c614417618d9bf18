// Profiling:
// go build ./profile/insert
// go tool pprof -http=":8000" -nodefraction=0.001 ./insert mem.pprof

package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/profile"

	collision "github.com/gridbugs/collision-detection-experiments"
	"github.com/gridbugs/collision-detection-experiments/aabb"
)

const worldSize = 1000

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	start := time.Now()
	slots := run(count, iters, entities)
	p.Stop()
	logger.Info("insert profile done",
		"rounds", count,
		"iters", iters,
		"entities", entities,
		"slots", slots,
		"elapsed", time.Since(start),
	)
}

// run simulates frames: every iteration moves each entity, reinserts all of
// them and clears the tree. After the first frame the tree should stop
// allocating. It returns the node slots held at the end.
func run(rounds, iters, numEntities int) int {
	rng := rand.New(rand.NewPCG(0, 0))
	slots := 0
	for range rounds {
		q := collision.NewLooseQuadTree[int](mgl32.Vec2{worldSize, worldSize})
		boxes := make([]aabb.AABB, numEntities)
		for i := range boxes {
			boxes[i] = aabb.New(
				mgl32.Vec2{rng.Float32() * (worldSize - 10), rng.Float32() * (worldSize - 10)},
				mgl32.Vec2{rng.Float32()*9 + 1, rng.Float32()*9 + 1},
			)
		}
		for range iters {
			for i := range boxes {
				step := mgl32.Vec2{rng.Float32() - 0.5, rng.Float32() - 0.5}
				moved := boxes[i].TopLeft.Add(step)
				moved[0] = mgl32.Clamp(moved[0], 0, worldSize-boxes[i].Size.X())
				moved[1] = mgl32.Clamp(moved[1], 0, worldSize-boxes[i].Size.Y())
				boxes[i].TopLeft = moved
				q.Insert(boxes[i], i)
			}
			q.Clear()
		}
		slots = q.Slots()
	}
	return slots
}
