// Command roguemaze generates room-and-maze levels and prints them as
// ASCII, or shares level seeds over websockets.
//
// Usage:
//
//	roguemaze [-config level.yaml] [-seed N] [-width W] [-height H] [-levels N]
//	roguemaze -serve :8080 [-every 30s] ...
//	roguemaze -join ws://host:8080/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/roguemaze/level"
	"github.com/katalvlaran/roguemaze/netsync"
	"github.com/katalvlaran/roguemaze/world"
)

func main() {
	configPath := flag.String("config", "", "YAML level configuration (default: built-in defaults)")
	seed := flag.Int64("seed", 0, "seed of the first level (0 = random)")
	width := flag.Int("width", 0, "grid width, overrides the configuration")
	height := flag.Int("height", 0, "grid height, overrides the configuration")
	levels := flag.Int("levels", 1, "number of consecutive levels to generate")
	serve := flag.String("serve", "", "serve level seeds as an authority on this address")
	every := flag.Duration("every", 0, "with -serve: advance to a new level this often (0 = never)")
	join := flag.String("join", "", "follow the authority at this websocket URL")
	quiet := flag.Bool("quiet", false, "print summaries only, without the map")
	worldOut := flag.Bool("world", false, "also print world-space start, exit, spawns and wall count")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printer := func(s *level.Snapshot) error {
		show(s, *quiet)
		if *worldOut {
			showWorld(s)
		}
		return nil
	}

	if *join != "" {
		if err := follow(ctx, *join, printer); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("join: %v", err)
		}
		return
	}

	cfg, err := loadConfig(*configPath, *seed, *width, *height)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *serve != "" {
		if err := authority(ctx, *serve, cfg, *every, printer); err != nil {
			log.Fatalf("serve: %v", err)
		}
		return
	}

	run, err := level.NewRun(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	_ = printer(run.Current())
	for i := 1; i < *levels; i++ {
		s, err := run.AdvanceRandom()
		if err != nil {
			log.Fatalf("generate level %d: %v", run.Level()+1, err)
		}
		_ = printer(s)
	}
}

// loadConfig reads the configuration file, if any, and applies the
// command-line overrides.
func loadConfig(path string, seed int64, width, height int) (level.Config, error) {
	cfg := level.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = level.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if seed != 0 {
		cfg = cfg.WithSeed(int32(seed))
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}

	return cfg, nil
}

// show prints a level and its goal room.
func show(s *level.Snapshot, quiet bool) {
	fmt.Println(s.Summary())
	if room, dist, err := level.FarthestRoom(s, s.Start()); err == nil {
		fmt.Printf("goal room %d %v, %d steps from start\n", room, s.Rooms()[room], dist)
	}
	if !quiet {
		fmt.Print(s)
		fmt.Println()
	}
}

// showWorld prints the level in a corner-anchored world frame.
func showWorld(s *level.Snapshot) {
	f := world.ForSnapshot(s, world.Vec3{}, false)
	fmt.Printf("start %+v exit %+v\n", f.Position(s.Start()), f.Position(s.Exit()))
	for _, sp := range s.Spawns() {
		fmt.Printf("spawn kind %d at %+v\n", sp.Kind, f.SpawnPosition(sp))
	}
	fmt.Printf("%d wall pieces\n", len(f.Walls(s.Grid())))
}

// authority serves seeds on addr and optionally advances levels on a timer.
func authority(ctx context.Context, addr string, cfg level.Config, every time.Duration, onLevel func(*level.Snapshot) error) error {
	auth := netsync.NewAuthority(log.Default())
	run, err := level.NewRun(cfg)
	if err != nil {
		return err
	}
	auth.Announce(ctx, netsync.NewAnnouncement(run.Current()))
	if err := onLevel(run.Current()); err != nil {
		return err
	}

	srv := &http.Server{Addr: addr, Handler: auth, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("authority listening on %s", addr)

	var tick <-chan time.Time
	if every > 0 {
		t := time.NewTicker(every)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdown)
		case err := <-errc:
			return err
		case <-tick:
			s, err := run.AdvanceRandom()
			if err != nil {
				return err
			}
			n := auth.Announce(ctx, netsync.NewAnnouncement(s))
			log.Printf("level %d announced to %d peers", s.Level(), n)
			if err := onLevel(s); err != nil {
				return err
			}
		}
	}
}

// follow joins an authority and hands every announced level to onLevel.
func follow(ctx context.Context, url string, onLevel func(*level.Snapshot) error) error {
	peer, err := netsync.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer peer.Close()
	log.Printf("joined %s", url)

	return peer.Follow(ctx, onLevel)
}
