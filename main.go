package main

import (
	"flag"
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
	"github.com/sirupsen/logrus"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		return
	}
	logrus.SetLevel(conf.Level())

	async.Async(func() {
		log.Error(network.NewWebsocketServer(conf.Server.WSAddr, conf).Serve())
	})
	server := network.NewTcpServer(conf.Server.TCPAddr, conf)
	log.Error(server.Serve())
}
