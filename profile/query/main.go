// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.prof

package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	collision "github.com/gridbugs/collision-detection-experiments"
	"github.com/gridbugs/collision-detection-experiments/aabb"
)

const (
	worldSize  = 1000
	entitySize = 5
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// CPU Profiling
	f, err := os.Create("cpu.prof")
	if err != nil {
		logger.Error("create cpu profile", "error", err)
		os.Exit(1)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		logger.Error("start cpu profile", "error", err)
		os.Exit(1)
	}

	count := 50
	iters := 100
	entities := 10000
	start := time.Now()
	hits := run(count, iters, entities)
	pprof.StopCPUProfile()
	f.Close()
	logger.Info("query profile done",
		"rounds", count,
		"iters", iters,
		"entities", entities,
		"hits", hits,
		"elapsed", time.Since(start),
	)

	// Memory Profiling
	memFile, err := os.Create("mem.prof")
	if err != nil {
		logger.Error("create heap profile", "error", err)
		os.Exit(1)
	}
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		logger.Error("write heap profile", "error", err)
		os.Exit(1)
	}
}

// run builds one tree per round and queries every entity against it iters
// times, returning the number of non-self overlaps seen.
func run(rounds, iters, numEntities int) int {
	rng := rand.New(rand.NewPCG(0, 0))
	boxes := make([]aabb.AABB, numEntities)
	for i := range boxes {
		topLeft := mgl32.Vec2{
			float32(rng.IntN(worldSize - entitySize)),
			float32(rng.IntN(worldSize - entitySize)),
		}
		boxes[i] = aabb.New(topLeft, mgl32.Vec2{entitySize, entitySize})
	}

	hits := 0
	for range rounds {
		q := collision.NewLooseQuadTree[int](mgl32.Vec2{worldSize, worldSize})
		for i, b := range boxes {
			q.Insert(b, i)
		}
		for range iters {
			for i, b := range boxes {
				q.ForEachIntersection(b, func(_ aabb.AABB, id *int) {
					if *id != i {
						hits++
					}
				})
			}
		}
	}
	return hits
}
