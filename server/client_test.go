package server

import (
	"errors"
	"io"
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"bptree/store"
	"bptree/zigzag"
)

// startServer serves a memory-backed store on a loopback port and returns a
// client against it.
func startServer(t *testing.T) *Client {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	app := New(store.NewMemoryStore(), log)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return NewClient("http://" + ln.Addr().String())
}

func TestClientImplementsStoreContract(t *testing.T) {
	c := startServer(t)

	_, err := c.RootID()
	require.ErrorIs(t, err, store.ErrRootNotSet)

	id, err := c.CreateNode([]byte("first"))
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	require.NoError(t, c.SetRootID(id))
	root, err := c.RootID()
	require.NoError(t, err)
	require.Equal(t, id, root)

	payload, err := c.GetNode(id)
	require.NoError(t, err)
	require.Equal(t, []byte("first"), payload)

	require.NoError(t, c.UpdateNode(id, []byte("second")))
	payload, err = c.GetNode(id)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), payload)

	require.NoError(t, c.DeleteNode(id))
	_, err = c.GetNode(id)
	require.ErrorIs(t, err, store.ErrNodeNotFound)
	require.True(t, errors.Is(c.DeleteNode(id), store.ErrNodeNotFound))
	require.True(t, errors.Is(c.UpdateNode(id, nil), store.ErrNodeNotFound))
}

// A node array survives the round trip through the remote store byte-exact.
func TestClientNodeArrayRoundTrip(t *testing.T) {
	c := startServer(t)

	a := zigzag.New[int, string](4)
	a, err := a.Insert(10, "A")
	require.NoError(t, err)
	a, err = a.InsertBoth(20, "B", "T")
	require.NoError(t, err)

	encoded, err := a.Encode()
	require.NoError(t, err)

	id, err := c.CreateNode(encoded)
	require.NoError(t, err)

	stored, err := c.GetNode(id)
	require.NoError(t, err)

	b, err := zigzag.Decode[int, string](stored)
	require.NoError(t, err)
	require.Equal(t, a.ToMap(), b.ToMap())
}
