package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/deepfabric/abacus/pkg/terminal"
	"github.com/fagongzi/goetty"
	"github.com/stretchr/testify/assert"
)

const (
	testTCPAddr = "127.0.0.1:12345"
)

func createConn(t *testing.T) goetty.IOSession {
	conn := goetty.NewConnector(testTCPAddr,
		goetty.WithClientDecoder(terminal.RawDecoder),
		goetty.WithClientEncoder(terminal.RawEncoder))
	_, err := conn.Connect()
	assert.NoError(t, err, "createConn failed")
	return conn
}

// readUntil reads chunks until expect bytes arrived
func readUntil(t *testing.T, conn goetty.IOSession, n int) string {
	var data []byte
	for len(data) < n {
		value, err := conn.ReadTimeout(time.Second * 10)
		if !assert.NoError(t, err, "readUntil failed") {
			break
		}
		data = append(data, value.([]byte)...)
	}
	return string(data)
}

func TestTCPTerminal(t *testing.T) {
	s, err := NewServer(WithTCPAddr(testTCPAddr), WithGrammar(grammar.SignedInteger()))
	assert.NoError(t, err, "TestTCPTerminal failed")
	assert.NoError(t, s.Start(), "TestTCPTerminal failed")
	defer s.Stop()

	conn := createConn(t)
	defer conn.Close()

	assert.NoError(t, conn.WriteAndFlush([]byte("(-7*6)=")), "TestTCPTerminal failed")
	assert.Equal(t, "(-7*6)=-42\r", readUntil(t, conn, len("(-7*6)=-42\r")), "TestTCPTerminal failed")

	var id uint64
	s.terminals.Range(func(key, value interface{}) bool {
		id = key.(uint64)
		return false
	})
	assert.True(t, id > 0, "TestTCPTerminal failed")
	assert.Equal(t, 1, s.terminalCount(), "TestTCPTerminal failed")

	var views []TerminalView
	doRequest(t, s, "GET", "/terminals", "", &views)
	assert.Equal(t, 1, len(views), "TestTCPTerminal failed")
	assert.Equal(t, uint64(1), views[0].Accepted, "TestTCPTerminal failed")

	result := doRequest(t, s, "POST", fmt.Sprintf("/terminals/%d/attention", id), "", nil)
	assert.Equal(t, codeOK, result.Code, "TestTCPTerminal failed")

	assert.NoError(t, conn.WriteAndFlush([]byte("(")), "TestTCPTerminal failed")
	expect := terminal.AttentionPrompt + "("
	assert.Equal(t, expect, readUntil(t, conn, len(expect)), "TestTCPTerminal failed")
}
