package tdclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tljson"
)

// errorType is the constructor TDLib answers failed requests with
const errorType = "error"

// ResponseError is a TDLib "error" object returned for a request
type ResponseError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("tdlib error %d: %s", e.Code, e.Message)
}

// Function is a generated request type answered by an R
type Function[R any] interface {
	tljson.Object
	DecodeResponse(data json.RawMessage) (R, error)
}

// Client is one TDLib instance
type Client struct {
	id int32
	d  *Dispatcher
}

// ID returns the TDLib client identifier, as found in Update.ClientID
func (c *Client) ID() int32 {
	return c.id
}

// Send sends req and waits for its response. A TDLib "error" answer is
// returned as *ResponseError. Cancelling ctx abandons the request; a late
// answer is dropped.
func (c *Client) Send(ctx context.Context, req tljson.Object) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", req.TLType())
	}
	extra := uuid.NewString()
	if body, err = tljson.SetField(body, tljson.ExtraKey, extra); err != nil {
		return nil, err
	}

	ch, err := c.d.reserve(extra)
	if err != nil {
		return nil, err
	}
	c.d.transport.Send(c.id, body)

	var resp json.RawMessage
	select {
	case resp = <-ch:
	case <-ctx.Done():
		c.d.release(extra)
		return nil, ctx.Err()
	case <-c.d.done:
		return nil, errors.Wrapf(errors.ErrClosed, "%s abandoned", req.TLType())
	}

	tag, err := tljson.PeekType(resp)
	if err != nil {
		return nil, errors.Wrapf(err, "response to %s", req.TLType())
	}
	if tag == errorType {
		var rerr ResponseError
		if err := json.Unmarshal(resp, &rerr); err != nil {
			return nil, errors.Wrapf(err, "decode error answering %s", req.TLType())
		}
		return nil, &rerr
	}
	return resp, nil
}

// Send sends a generated request and decodes its typed response
func Send[R any](ctx context.Context, c *Client, fn Function[R]) (R, error) {
	var zero R
	data, err := c.Send(ctx, fn)
	if err != nil {
		return zero, err
	}
	resp, err := fn.DecodeResponse(data)
	if err != nil {
		return zero, errors.Wrapf(err, "decode response to %s", fn.TLType())
	}
	return resp, nil
}
