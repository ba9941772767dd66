package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	quadtree "github.com/robert-butts/regionquadtree"
	"github.com/segmentio/encoding/json"
)

// Set at build.
var version = "v0.1.0"

// Keeps the config field names readable by the cli package when the binary
// is obfuscated.
var _ = reflect.TypeOf(config{})

type config struct {
	X         float64 `cli:""        env:"QUADTREE_X"            help:"Center X of the tree boundary."`
	Y         float64 `cli:""        env:"QUADTREE_Y"            help:"Center Y of the tree boundary."`
	W         float64 `cli:""        env:"QUADTREE_W"            help:"Half width of the tree boundary."`
	H         float64 `cli:""        env:"QUADTREE_H"            help:"Half height of the tree boundary."`
	Capacity  int     `cli:""        env:"QUADTREE_CAPACITY"     help:"Maximum number of points a node holds before it is divided."`
	Points    int     `cli:""        env:"QUADTREE_POINTS"       help:"Number of random points to insert."`
	Threads   int     `cli:""        env:"QUADTREE_THREADS"      help:"Number of goroutines inserting points."`
	Seed      int     `cli:",hidden" env:"QUADTREE_SEED"         help:"Random seed. 0 picks one from the clock."`
	Spill     float64 `cli:",hidden" env:"QUADTREE_SPILL"        help:"Fraction of the boundary size by which random points may fall outside of it."`
	LogLevel  string  `cli:""        env:"QUADTREE_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent bool    `cli:""        env:"QUADTREE_LOG_INDENT"   help:"Indent logs."`
	Version   bool    `cli:""        env:"-"                     help:"Show version."`
	Help      bool    `cli:""        env:"-"                     help:"Show help."`
}

type result struct {
	Inserted int64
	Rejected int64
	Elapsed  time.Duration
}

func main() {
	conf := config{
		X:        100,
		Y:        100,
		W:        50,
		H:        50,
		Capacity: 4,
		Points:   1000000,
		Threads:  runtime.NumCPU(),
		LogLevel: logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Inserts random points into a quadtree and reports how long it took.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	boundary := quadtree.NewRectangle(conf.X, conf.Y, conf.W, conf.H)
	tree, err := quadtree.NewLocked(&boundary, conf.Capacity)
	if err != nil {
		logs.Fatal(errors.New("creating quadtree failed").Wrap(err))
	}

	seed := uint64(conf.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logs.WithTag("boundary", boundary.String()).
		WithTag("capacity", conf.Capacity).
		WithTag("points", conf.Points).
		WithTag("threads", conf.Threads).
		WithTag("seed", seed).
		Info("inserting points")

	res := insertRandom(ctx, tree, conf, seed)

	logs.WithTag("inserted", res.Inserted).
		WithTag("rejected", res.Rejected).
		WithTag("stored", tree.Len()).
		WithTag("divided", tree.Divided()).
		WithTag("elapsed", res.Elapsed.String()).
		Info("points inserted")

	if err := ctx.Err(); err != nil {
		logs.Warn(errors.New("insertion interrupted").Wrap(err))
	}
}

func validateConfig(conf config) error {
	if conf.W <= 0 || conf.H <= 0 {
		return errors.New("boundary extents must be positive").
			WithTag("w", conf.W).
			WithTag("h", conf.H)
	}
	if conf.Points < 0 {
		return errors.New("points must not be negative").WithTag("points", conf.Points)
	}
	if conf.Threads < 1 {
		return errors.New("threads must be greater than 0").WithTag("threads", conf.Threads)
	}
	if conf.Spill < 0 {
		return errors.New("spill must not be negative").WithTag("spill", conf.Spill)
	}
	return nil
}

// insertRandom spreads conf.Points uniformly random points over conf.Threads
// goroutines. The last goroutine takes the remainder.
func insertRandom(ctx context.Context, tree *quadtree.Locked, conf config, seed uint64) result {
	var inserted, rejected atomic.Int64
	var wg sync.WaitGroup

	boundary := tree.Boundary()
	spanX := 2 * boundary.W * (1 + conf.Spill)
	spanY := 2 * boundary.H * (1 + conf.Spill)
	minX := boundary.X - spanX/2
	minY := boundary.Y - spanY/2

	perThread := conf.Points / conf.Threads
	start := time.Now()

	for i := 0; i < conf.Threads; i++ {
		n := perThread
		if i == conf.Threads-1 {
			n = conf.Points - perThread*(conf.Threads-1)
		}

		wg.Add(1)
		go func(n int, rng *rand.Rand) {
			defer wg.Done()

			for j := 0; j < n; j++ {
				if j%1024 == 0 && ctx.Err() != nil {
					return
				}

				p := quadtree.Point{
					X: minX + rng.Float64()*spanX,
					Y: minY + rng.Float64()*spanY,
				}
				if tree.Insert(p) {
					inserted.Add(1)
				} else {
					rejected.Add(1)
				}
			}
		}(n, rand.New(rand.NewPCG(seed, uint64(i))))
	}

	wg.Wait()

	return result{
		Inserted: inserted.Load(),
		Rejected: rejected.Load(),
		Elapsed:  time.Since(start),
	}
}
