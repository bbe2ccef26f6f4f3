package terminal

import (
	"fmt"

	"github.com/fagongzi/goetty"
)

var (
	// RawDecoder decodes whatever bytes are readable as one chunk
	RawDecoder goetty.Decoder = &rawCodec{}
	// RawEncoder writes []byte as is
	RawEncoder goetty.Encoder = &rawCodec{}
)

type rawCodec struct {
}

func (c *rawCodec) Decode(in *goetty.ByteBuf) (bool, interface{}, error) {
	if in.Readable() == 0 {
		return false, nil, nil
	}

	_, data, err := in.ReadAll()
	if err != nil {
		return false, nil, err
	}

	return true, data, nil
}

func (c *rawCodec) Encode(data interface{}, out *goetty.ByteBuf) error {
	if value, ok := data.([]byte); ok {
		_, err := out.Write(value)
		return err
	}

	return fmt.Errorf("not support %T %+v", data, data)
}
