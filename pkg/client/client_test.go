package client

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deepfabric/abacus/pkg/api"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T) (Client, func()) {
	s, err := api.NewServer()
	assert.NoError(t, err, "newTestClient failed")

	hs := httptest.NewServer(s.Handler())
	c := NewClient(strings.TrimPrefix(hs.URL, "http://"))
	return c, func() {
		hs.Close()
		s.Stop()
	}
}

func TestSessionLifecycle(t *testing.T) {
	c, closeFunc := newTestClient(t)
	defer closeFunc()

	id, err := c.CreateSession(api.CreateSession{Grammar: "signed"})
	assert.NoError(t, err, "TestSessionLifecycle failed")

	view, err := c.Input(id, []byte("(7-20"))
	assert.NoError(t, err, "TestSessionLifecycle failed")
	assert.Equal(t, "int2", view.State, "TestSessionLifecycle failed")

	active := true
	ids, err := c.Sessions("", &active)
	assert.NoError(t, err, "TestSessionLifecycle failed")
	assert.Equal(t, []uint32{id}, ids, "TestSessionLifecycle failed")

	view, err = c.Input(id, []byte(")="))
	assert.NoError(t, err, "TestSessionLifecycle failed")
	assert.Equal(t, ")=-13\r", view.Output, "TestSessionLifecycle failed")

	view, err = c.Session(id)
	assert.NoError(t, err, "TestSessionLifecycle failed")
	assert.Equal(t, uint64(1), view.Accepted, "TestSessionLifecycle failed")

	assert.NoError(t, c.DeleteSession(id), "TestSessionLifecycle failed")
	_, err = c.Session(id)
	assert.Error(t, err, "TestSessionLifecycle failed")
}

func TestEvalAndTable(t *testing.T) {
	c, closeFunc := newTestClient(t)
	defer closeFunc()

	view, err := c.Eval("decimal", []byte("(1/4)="))
	assert.NoError(t, err, "TestEvalAndTable failed")
	assert.Equal(t, "(1/4)=0.250000\r", view.Output, "TestEvalAndTable failed")

	table, err := c.Table("decimal")
	assert.NoError(t, err, "TestEvalAndTable failed")
	assert.Equal(t, "decimal", table.Grammar, "TestEvalAndTable failed")
	assert.Contains(t, table.Reachable, "frac2", "TestEvalAndTable failed")

	_, err = c.Table("roman")
	assert.Error(t, err, "TestEvalAndTable failed")
}

func TestTerminals(t *testing.T) {
	c, closeFunc := newTestClient(t)
	defer closeFunc()

	views, err := c.Terminals()
	assert.NoError(t, err, "TestTerminals failed")
	assert.Equal(t, 0, len(views), "TestTerminals failed")
	assert.Error(t, c.Attention(1), "TestTerminals failed")
}
