package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/deepfabric/abacus/pkg/api"
)

func (c *httpClient) doPost(url, contentType string, data []byte) (*http.Response, error) {
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	return c.cli.Do(req)
}

func (c *httpClient) doPut(url, contentType string, data []byte) (*http.Response, error) {
	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	return c.cli.Do(req)
}

func (c *httpClient) doDelete(url string) (*http.Response, error) {
	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", jsonContextType)
	return c.cli.Do(req)
}

func readUint32Result(resp *http.Response) (uint32, error) {
	result := &uint32Result{}
	err := readResult(resp, result)
	if err != nil {
		return 0, err
	}

	return result.Value, nil
}

func readUint32SliceResult(resp *http.Response) ([]uint32, error) {
	result := &uint32SliceResult{}
	err := readResult(resp, result)
	if err != nil {
		return nil, err
	}

	return result.Value, nil
}

func readSessionResult(resp *http.Response) (api.SessionView, error) {
	result := &sessionResult{}
	err := readResult(resp, result)
	if err != nil {
		return api.SessionView{}, err
	}

	return result.Value, nil
}

func readEmptyResult(resp *http.Response) error {
	return readResult(resp, &codeResult{})
}

func readResult(resp *http.Response, result result) error {
	data, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return err
	}

	err = json.Unmarshal(data, result)
	if err != nil {
		return err
	}

	if result.GetCode() != 0 {
		return errors.New(result.GetError())
	}

	return nil
}
