package easysteam

import (
	jsoniter "github.com/json-iterator/go"
)

var _ Codec = &JsonCodec{}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JsonCodec implements the Codec interface.
// JsonCodec encodes and decodes data in json way.
type JsonCodec struct{}

// Encode implements the Codec Encode method.
func (c *JsonCodec) Encode(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

// Decode implements the Codec Decode method.
func (c *JsonCodec) Decode(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}
