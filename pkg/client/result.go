package client

import (
	"github.com/deepfabric/abacus/pkg/api"
)

type result interface {
	GetCode() int
	GetError() string
}

type codeResult struct {
	Code  int    `json:"code"`
	Error string `json:"err"`
}

func (r *codeResult) GetCode() int {
	return r.Code
}

func (r *codeResult) GetError() string {
	return r.Error
}

type uint32Result struct {
	codeResult
	Value uint32 `json:"value"`
}

type uint32SliceResult struct {
	codeResult
	Value []uint32 `json:"value"`
}

type sessionResult struct {
	codeResult
	Value api.SessionView `json:"value"`
}

type tableResult struct {
	codeResult
	Value api.TableView `json:"value"`
}

type terminalsResult struct {
	codeResult
	Value []api.TerminalView `json:"value"`
}
