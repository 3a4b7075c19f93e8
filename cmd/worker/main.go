package main

import (
	"videotube/internal/app"
	"videotube/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	worker, err := app.NewWorker(cfg)
	if err != nil {
		panic(err)
	}

	if err := worker.Run(); err != nil {
		panic(err)
	}

	worker.Wait()

	if err := worker.Shutdown(); err != nil {
		panic(err)
	}
}
