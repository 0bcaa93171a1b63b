// Command elevsim runs the elevator bank simulation and serves its
// read-only /state and /stats endpoints on :8080.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"elevsim/internal/config"
	"elevsim/internal/sim"
	"elevsim/internal/transport"
)

func main() {
	now := time.Now()
	world := sim.NewWorld(config.Default, now.UnixNano(), now)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Printf("starting simulation: %d elevators, %d floors", sim.NumElevators, sim.Floors)
	go world.Run(ctx)

	router := transport.NewRouter(world)
	log.Printf("listening on :8080")
	if err := http.ListenAndServe(":8080", router); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
