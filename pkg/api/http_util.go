package api

import (
	"io"
	"io/ioutil"
	"math"
	"net/http"

	"github.com/fagongzi/util/format"
	"github.com/labstack/echo"
)

func readBody(c echo.Context, max int) ([]byte, error) {
	data, err := ioutil.ReadAll(io.LimitReader(c.Request().Body, int64(max)+1))
	c.Request().Body.Close()
	if err != nil {
		return nil, err
	}

	if len(data) > max {
		return nil, ErrInputTooLarge
	}

	return data, nil
}

func readSessionID(c echo.Context) (uint32, error) {
	value, err := format.ParseStrUInt64(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, ErrSessionNotFound
	}

	return uint32(value), nil
}

func failed(c echo.Context, err error) error {
	return c.JSON(http.StatusOK, &JSONResult{
		Code:  codeFailed,
		Error: err.Error(),
	})
}

func succeed(c echo.Context, value interface{}) error {
	return c.JSON(http.StatusOK, &JSONResult{
		Code:  codeOK,
		Value: value,
	})
}
