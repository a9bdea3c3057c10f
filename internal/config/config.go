package config

import (
	"flag"
	"os"
)

var (
	RunAddr  string
	LogLevel string
)

func ParseFlags() {
	flag.StringVar(&RunAddr, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&LogLevel, "l", "info", "log level")

	flag.Parse()

	envRunAddr := os.Getenv("RUN_ADDRESS")
	if envRunAddr != "" {
		RunAddr = envRunAddr
	}

	envLogLevel := os.Getenv("LOG_LEVEL")
	if envLogLevel != "" {
		LogLevel = envLogLevel
	}
}
