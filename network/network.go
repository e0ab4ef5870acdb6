package network

import (
	"context"
	"errors"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/session"
	"github.com/sirupsen/logrus"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(rwc protocol.ReadWriteCloser, conf config.Config) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err == nil && authInfo.ID == 0 {
		err = consts.ErrorsAuthFail
	}
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	player := Connected(c, authInfo)
	log.Infof("player auth accessed, conn %d, %d:%s\n", c.ID(), authInfo.ID, player.Name)

	s, err := session.New(conf.RemoteSession(player.Name), player,
		session.WithLogger(logrus.WithField("player", player.ID)))
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	service.Register(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	async.Async(func() {
		defer service.Remove(s.ID)
		err := s.Run(ctx)
		if err != nil && !errors.Is(err, consts.ErrorsExist) && !errors.Is(err, context.Canceled) {
			log.Errorf("session %s stopped: %v\n", s.ID, err)
		}
		_ = c.Close()
	})
	defer player.Offline()
	return player.Listening()
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
