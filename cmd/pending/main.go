// Command pending считает очередь ожидающих заказов перед одним заказом
// и пишет сводку в лог.
package main

import (
	"context"
	"log"

	"github.com/ibeloyar/orderqueue/internal/app"
	"github.com/ibeloyar/orderqueue/internal/config"
	"github.com/ibeloyar/orderqueue/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.RunOnce(context.Background(), cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
