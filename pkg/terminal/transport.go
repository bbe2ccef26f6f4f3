package terminal

import (
	"fmt"
	"io"

	"github.com/fagongzi/goetty"
)

// Transport byte channel of a terminal
type Transport interface {
	// Receive blocks until at least one byte arrives, io.EOF when the channel is done
	Receive() ([]byte, error)
	// Transmit writes the bytes in order
	Transmit([]byte) error
}

type streamTransport struct {
	r   io.Reader
	w   io.Writer
	buf []byte
}

// NewStreamTransport returns a transport over a reader and a writer
func NewStreamTransport(r io.Reader, w io.Writer) Transport {
	return &streamTransport{
		r:   r,
		w:   w,
		buf: make([]byte, 256),
	}
}

func (t *streamTransport) Receive() ([]byte, error) {
	for {
		n, err := t.r.Read(t.buf)
		if n > 0 {
			return append([]byte(nil), t.buf[:n]...), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (t *streamTransport) Transmit(data []byte) error {
	_, err := t.w.Write(data)
	return err
}

type sessionTransport struct {
	session goetty.IOSession
}

// NewSessionTransport returns a transport over a goetty session using the raw codec
func NewSessionTransport(session goetty.IOSession) Transport {
	return &sessionTransport{session: session}
}

func (t *sessionTransport) Receive() ([]byte, error) {
	value, err := t.session.Read()
	if err != nil {
		return nil, err
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("not support %T", value)
	}
	return data, nil
}

func (t *sessionTransport) Transmit(data []byte) error {
	return t.session.WriteAndFlush(data)
}
