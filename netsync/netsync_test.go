package netsync_test

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/level"
	"github.com/katalvlaran/roguemaze/netsync"
)

var quiet = log.New(io.Discard, "", 0)

func smallConfig() level.Config {
	cfg := level.DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	cfg.MaxRooms = 6
	cfg.RoomMinW, cfg.RoomMinH, cfg.RoomMaxW, cfg.RoomMaxH = 5, 5, 9, 9

	return cfg
}

func startAuthority(t *testing.T) (*netsync.Authority, string) {
	t.Helper()
	auth := netsync.NewAuthority(quiet)
	srv := httptest.NewServer(auth)
	t.Cleanup(srv.Close)

	return auth, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func assertSameLevel(t *testing.T, want, got *level.Snapshot) {
	t.Helper()
	assert.Equal(t, want.Level(), got.Level())
	assert.Equal(t, want.Seed(), got.Seed())
	assert.True(t, want.Grid().Equal(got.Grid()))
	assert.Equal(t, want.Rooms(), got.Rooms())
	assert.Equal(t, want.Start(), got.Start())
	assert.Equal(t, want.Exit(), got.Exit())
	assert.Equal(t, want.Traps(), got.Traps())
	assert.Equal(t, want.Spawns(), got.Spawns())
}

func TestAnnouncement_Generate(t *testing.T) {
	snap, err := level.Generate(smallConfig().WithSeed(42), level.WithLevel(3), level.WithLogger(quiet))
	require.NoError(t, err)

	ann := netsync.NewAnnouncement(snap)
	assert.Equal(t, 3, ann.Level)
	assert.Equal(t, int32(42), ann.Seed)

	again, err := ann.Generate(level.WithLogger(quiet))
	require.NoError(t, err)
	assertSameLevel(t, snap, again)
}

func TestAuthority_PeerRebuildsAnnouncedLevels(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth, url := startAuthority(t)
	_, ok := auth.Current()
	assert.False(t, ok)

	run, err := level.NewRun(smallConfig().WithSeed(42), level.WithLogger(quiet))
	require.NoError(t, err)
	assert.Zero(t, auth.Announce(ctx, netsync.NewAnnouncement(run.Current())))

	peer, err := netsync.Dial(ctx, url)
	require.NoError(t, err)
	defer peer.Close()

	// A late joiner gets the current level first.
	ann, err := peer.Receive(ctx)
	require.NoError(t, err)
	local, err := ann.Generate(level.WithLogger(quiet))
	require.NoError(t, err)
	assertSameLevel(t, run.Current(), local)
	assert.Equal(t, 1, auth.Peers())

	next, err := run.Advance(1234)
	require.NoError(t, err)
	assert.Equal(t, 1, auth.Announce(ctx, netsync.NewAnnouncement(next)))

	ann, err = peer.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ann.Level)
	local, err = ann.Generate(level.WithLogger(quiet))
	require.NoError(t, err)
	assertSameLevel(t, next, local)

	cur, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, int32(1234), cur.Seed)
}

func TestAuthority_DropsLeftPeers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth, url := startAuthority(t)
	snap, err := level.Generate(smallConfig().WithSeed(5), level.WithLogger(quiet))
	require.NoError(t, err)
	auth.Announce(ctx, netsync.NewAnnouncement(snap))

	peer, err := netsync.Dial(ctx, url)
	require.NoError(t, err)
	_, err = peer.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, auth.Peers())

	require.NoError(t, peer.Close())
	assert.Eventually(t, func() bool { return auth.Peers() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestPeer_Follow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth, url := startAuthority(t)
	run, err := level.NewRun(smallConfig().WithSeed(9), level.WithLogger(quiet))
	require.NoError(t, err)
	auth.Announce(ctx, netsync.NewAnnouncement(run.Current()))

	peer, err := netsync.Dial(ctx, url)
	require.NoError(t, err)
	defer peer.Close()

	stop := assert.AnError
	var got []*level.Snapshot
	err = peer.Follow(ctx, func(s *level.Snapshot) error {
		got = append(got, s)
		if len(got) == 1 {
			next, err := run.Advance(10)
			if err != nil {
				return err
			}
			auth.Announce(ctx, netsync.NewAnnouncement(next))
			return nil
		}
		return stop
	}, level.WithLogger(quiet))
	require.ErrorIs(t, err, stop)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Level())
	assertSameLevel(t, run.Current(), got[1])
}

func TestDial_Fails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := netsync.Dial(ctx, "ws://127.0.0.1:1/none")
	assert.Error(t, err)
}
