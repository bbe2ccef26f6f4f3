package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deepfabric/abacus/pkg/api"
)

const (
	jsonContextType = "application/json"
	rawContextType  = "application/octet-stream"
)

// Client abacus http api client
type Client interface {
	// CreateSession create a session and returns its id
	CreateSession(api.CreateSession) (uint32, error)
	// Input feed bytes to the session, returns the produced output and results
	Input(id uint32, data []byte) (api.SessionView, error)
	// Session returns the session snapshot
	Session(id uint32) (api.SessionView, error)
	// DeleteSession delete the session
	DeleteSession(id uint32) error
	// Sessions returns session ids of the grammar, all grammars if empty
	Sessions(grammar string, active *bool) ([]uint32, error)
	// Eval evaluate the input with a fresh session of the grammar
	Eval(grammar string, data []byte) (api.SessionView, error)
	// Table returns the transition table of the grammar
	Table(grammar string) (api.TableView, error)
	// Terminals returns the connected tcp terminals
	Terminals() ([]api.TerminalView, error)
	// Attention queue the diagnostic prompt on a tcp terminal
	Attention(id uint64) error
}

type httpClient struct {
	opts *options
	addr string
	cli  *http.Client
}

// NewClient returns a http client
func NewClient(addr string, opts ...Option) Client {
	cli := &http.Client{}
	*cli = *http.DefaultClient
	c := &httpClient{
		addr: fmt.Sprintf("http://%s", addr),
		opts: &options{},
		cli:  cli,
	}

	for _, opt := range opts {
		opt(c.opts)
	}

	c.opts.adjust()
	c.cli.Timeout = c.opts.timeout
	return c
}

func (c *httpClient) CreateSession(value api.CreateSession) (uint32, error) {
	data, err := json.Marshal(&value)
	if err != nil {
		return 0, err
	}

	resp, err := c.doPost(fmt.Sprintf("%s/sessions", c.addr), jsonContextType, data)
	if err != nil {
		return 0, err
	}

	return readUint32Result(resp)
}

func (c *httpClient) Input(id uint32, data []byte) (api.SessionView, error) {
	resp, err := c.doPut(fmt.Sprintf("%s/sessions/%d/input", c.addr, id), rawContextType, data)
	if err != nil {
		return api.SessionView{}, err
	}

	return readSessionResult(resp)
}

func (c *httpClient) Session(id uint32) (api.SessionView, error) {
	resp, err := c.cli.Get(fmt.Sprintf("%s/sessions/%d", c.addr, id))
	if err != nil {
		return api.SessionView{}, err
	}

	return readSessionResult(resp)
}

func (c *httpClient) DeleteSession(id uint32) error {
	resp, err := c.doDelete(fmt.Sprintf("%s/sessions/%d", c.addr, id))
	if err != nil {
		return err
	}

	return readEmptyResult(resp)
}

func (c *httpClient) Sessions(grammar string, active *bool) ([]uint32, error) {
	query := url.Values{}
	if grammar != "" {
		query.Set("grammar", grammar)
	}
	if active != nil {
		query.Set("active", fmt.Sprintf("%t", *active))
	}

	resp, err := c.cli.Get(fmt.Sprintf("%s/sessions?%s", c.addr, query.Encode()))
	if err != nil {
		return nil, err
	}

	return readUint32SliceResult(resp)
}

func (c *httpClient) Eval(grammar string, data []byte) (api.SessionView, error) {
	target := fmt.Sprintf("%s/eval", c.addr)
	if grammar != "" {
		target = fmt.Sprintf("%s?grammar=%s", target, url.QueryEscape(grammar))
	}

	resp, err := c.doPost(target, rawContextType, data)
	if err != nil {
		return api.SessionView{}, err
	}

	return readSessionResult(resp)
}

func (c *httpClient) Table(grammar string) (api.TableView, error) {
	resp, err := c.cli.Get(fmt.Sprintf("%s/grammars/%s/table", c.addr, url.PathEscape(grammar)))
	if err != nil {
		return api.TableView{}, err
	}

	result := &tableResult{}
	if err := readResult(resp, result); err != nil {
		return api.TableView{}, err
	}
	return result.Value, nil
}

func (c *httpClient) Terminals() ([]api.TerminalView, error) {
	resp, err := c.cli.Get(fmt.Sprintf("%s/terminals", c.addr))
	if err != nil {
		return nil, err
	}

	result := &terminalsResult{}
	if err := readResult(resp, result); err != nil {
		return nil, err
	}
	return result.Value, nil
}

func (c *httpClient) Attention(id uint64) error {
	resp, err := c.doPost(fmt.Sprintf("%s/terminals/%d/attention", c.addr, id), jsonContextType, nil)
	if err != nil {
		return err
	}

	return readEmptyResult(resp)
}
