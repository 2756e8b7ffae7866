package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ResponseCode accepts both "200" and 200 on the wire
type ResponseCode string

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ResponseCode(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ResponseCode(n.String())
	return nil
}

// Envelope is the wrapper every upstream response uses. Data is a pointer so
// an absent payload can be told apart from an empty one.
type Envelope[T any] struct {
	ResponseCode    ResponseCode `json:"response_code"`
	ResponseMessage string       `json:"response_message"`
	Data            *T           `json:"data"`
}

// NewEnvelope wraps data in a success envelope
func NewEnvelope[T any](code, message string, data *T) Envelope[T] {
	return Envelope[T]{ResponseCode: ResponseCode(code), ResponseMessage: message, Data: data}
}
