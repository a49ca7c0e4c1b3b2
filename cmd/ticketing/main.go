package main

import (
	"context"
	"flag"
	l "log"

	"nft-ticketing-backend/config"
	c "nft-ticketing-backend/context"
	"nft-ticketing-backend/factory"
	"nft-ticketing-backend/logger"
	"nft-ticketing-backend/router"

	"github.com/codegangsta/negroni"
	"github.com/spf13/viper"
)

var (
	version string
)

const defaultCorrelationID = "00000000.00000000"

var ctx context.Context

func init() {
	ctx, _ = c.WithCorrelationID(context.Background(), defaultCorrelationID)
}

func main() {
	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	flag.Parse()

	viper.SetConfigFile(*cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		l.Fatalln("error reading config:", err)
	}
	logger.SetLevel(viper.GetString(config.LogLevel))
	logger.Infof(ctx, "starting ticketing backend %s", version)

	muxRouter := router.Router(ctx, factory.NewFactory())

	n := negroni.New()
	n.UseHandler(muxRouter)
	n.Run(viper.GetString(config.Port))
}
