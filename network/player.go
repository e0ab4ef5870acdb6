package network

import (
	"context"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/core/util/strings"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Player is a human seat played over a network connection.
type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   atomic.Bool
	online atomic.Bool
}

func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  strings.Desensitize(info.Name),
		Score: info.Score,
	}
	player.conn = conn
	player.data = make(chan *protocol.Packet, 8)
	player.online.Store(true)
	return player
}

func (p *Player) Offline() {
	p.online.Store(false)
	_ = p.conn.Close()
	close(p.data)
}

// Online is false once the connection has been closed.
func (p *Player) Online() bool {
	return p.online.Load()
}

// Listening forwards packets to Ask while a transaction is open and drops
// them otherwise. It runs on its own goroutine.
func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

func (p *Player) Write(text string) error {
	return p.WriteString(text)
}

func (p *Player) WriteString(data string) error {
	time.Sleep(30 * time.Millisecond)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{
		Body: json.Marshal(data),
	})
}

func (p *Player) Ask(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if err := p.WriteString(prompt); err != nil {
		return "", err
	}
	p.StartTransaction()
	defer p.StopTransaction()
	packet, err := p.askForPacket(ctx, timeout)
	if err != nil {
		return "", err
	}
	return packet.String(), nil
}

func (p *Player) askForPacket(ctx context.Context, timeout time.Duration) (*protocol.Packet, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	var packet *protocol.Packet
	select {
	case packet = <-p.data:
	case <-expired:
		return nil, consts.ErrorsTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

// ShowState sends the table as a JSON frame.
func (p *Player) ShowState(state game.State) error {
	return p.WriteObject(NewStateView(state))
}

func (p *Player) StartTransaction() {
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}
