package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultBitrixURL       = "https://vlotho.ru/rest/13202/yd0cah2o4ywvd747"
	DefaultBitrixTimeout   = 0
	DefaultOrderID         = "5609"
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	RunAddress      string            `env:"RUN_ADDRESS"`
	BitrixURL       string            `env:"BITRIX_URL"`
	BitrixTimeout   time.Duration     `env:"BITRIX_TIMEOUT"`
	BitrixHeaders   map[string]string `env:"BITRIX_HEADERS" envSeparator:"," envKeyValSeparator:":"`
	CORSOrigins     []string          `env:"CORS_ORIGINS" envSeparator:","`
	OrderID         string            `env:"ORDER_ID"`
	FromDate        string            `env:"FROM_DATE"`
	UntilDate       string            `env:"UNTIL_DATE"`
	ShutdownTimeout time.Duration     `env:"SHUTDOWN_TIMEOUT"`
}

func Read() (Config, error) {
	config := Config{
		BitrixHeaders: map[string]string{"Content-Type": "application/json"},
		CORSOrigins:   []string{"*"},
	}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.BitrixURL, "b", DefaultBitrixURL, "Bitrix24 REST webhook base URL")
	flag.DurationVar(&config.BitrixTimeout, "t", DefaultBitrixTimeout, "Bitrix24 request timeout, 0 - client default")

	flag.StringVar(&config.OrderID, "o", DefaultOrderID, "Anchor order ID (pending command)")
	flag.StringVar(&config.FromDate, "f", "", "Keep pending orders inserted on or after this date (pending command)")
	flag.StringVar(&config.UntilDate, "u", "", "Keep pending orders inserted on or before this date (pending command)")

	flag.DurationVar(&config.ShutdownTimeout, "s", DefaultShutdownTimeout, "Graceful shutdown timeout")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
