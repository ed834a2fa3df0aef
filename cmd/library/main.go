package main

import (
	"io/fs"
	stdLog "log"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/libranet/library/app"
	"github.com/Astemirdum/libranet/library/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig()

	app.Run(cfg)
}
