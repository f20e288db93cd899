package netsync

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/katalvlaran/roguemaze/level"
)

// Peer is the receiving side of an Authority.
type Peer struct {
	conn *websocket.Conn
}

// Dial connects to an Authority at url (ws:// or wss://).
func Dial(ctx context.Context, url string) (*Peer, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("netsync: dial %s: %w", url, err)
	}

	return &Peer{conn: conn}, nil
}

// Receive blocks until the next announcement arrives.
func (p *Peer) Receive(ctx context.Context) (Announcement, error) {
	var ann Announcement
	if err := wsjson.Read(ctx, p.conn, &ann); err != nil {
		return Announcement{}, fmt.Errorf("netsync: receive: %w", err)
	}

	return ann, nil
}

// Follow generates every announced level and hands it to fn until ctx is
// done, the connection fails, or fn returns an error.
func (p *Peer) Follow(ctx context.Context, fn func(*level.Snapshot) error, opts ...level.Option) error {
	for {
		ann, err := p.Receive(ctx)
		if err != nil {
			return err
		}
		snap, err := ann.Generate(opts...)
		if err != nil {
			return fmt.Errorf("netsync: level %d: %w", ann.Level, err)
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
}

// Close leaves the authority.
func (p *Peer) Close() error {
	return p.conn.Close(websocket.StatusNormalClosure, "")
}
