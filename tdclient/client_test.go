package tdclient

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tljson"
)

// getOption and optionValueString have the shape tlgen emits

type getOption struct {
	Name string `json:"name"`
}

func (*getOption) TLType() string { return "getOption" }

func (v getOption) MarshalJSON() ([]byte, error) {
	type stub getOption
	return tljson.MarshalTagged("getOption", stub(v))
}

func (*getOption) DecodeResponse(data json.RawMessage) (*optionValueString, error) {
	return tljson.DecodeValue[*optionValueString](data)
}

type optionValueString struct {
	Value string `json:"value"`
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeTransport) {
	t.Helper()
	ft := newFakeTransport()
	d := NewDispatcher(ft, Options{ReceiveTimeout: 10 * time.Millisecond})
	t.Cleanup(func() { d.Close() })
	return d, ft
}

func receiveSent(t *testing.T, ft *fakeTransport) sentRequest {
	t.Helper()
	select {
	case req := <-ft.sent:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("no request sent")
		return sentRequest{}
	}
}

func TestClientSend(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()
	assert.Equal(t, int32(1), c.ID())

	go func() {
		req := <-ft.sent
		ft.reply(req, map[string]interface{}{"@type": "optionValueString", "value": req.Body["name"]})
	}()

	resp, err := c.Send(context.Background(), &getOption{Name: "version"})
	require.NoError(t, err)

	tag, err := tljson.PeekType(resp)
	require.NoError(t, err)
	assert.Equal(t, "optionValueString", tag)
	assert.Zero(t, d.pendingCount())
}

func TestClientSendRequestBody(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Send(ctx, &getOption{Name: "version"})

	req := receiveSent(t, ft)
	assert.Equal(t, c.ID(), req.ClientID)
	assert.Equal(t, "getOption", req.Body["@type"])
	assert.Equal(t, "version", req.Body["name"])
	extra, ok := req.Body["@extra"].(string)
	require.True(t, ok)
	assert.Len(t, extra, 36)
}

func TestSendTyped(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()

	go func() {
		req := <-ft.sent
		ft.reply(req, map[string]interface{}{"@type": "optionValueString", "value": "1.8.40"})
	}()

	value, err := Send(context.Background(), c, &getOption{Name: "version"})
	require.NoError(t, err)
	assert.Equal(t, "1.8.40", value.Value)
}

func TestClientSendError(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()

	go func() {
		req := <-ft.sent
		ft.reply(req, map[string]interface{}{"@type": "error", "code": 400, "message": "Option not found"})
	}()

	_, err := Send(context.Background(), c, &getOption{Name: "nope"})
	require.Error(t, err)

	var rerr *ResponseError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, int32(400), rerr.Code)
	assert.Equal(t, "Option not found", rerr.Message)
	assert.Equal(t, "tdlib error 400: Option not found", err.Error())
}

func TestClientSendOutOfOrder(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()

	results := make(chan string, 2)
	for _, name := range []string{"first", "second"} {
		name := name
		go func() {
			v, err := Send(context.Background(), c, &getOption{Name: name})
			if err != nil {
				results <- err.Error()
				return
			}
			results <- name + "=" + v.Value
		}()
	}

	a := receiveSent(t, ft)
	b := receiveSent(t, ft)
	ft.reply(b, map[string]interface{}{"@type": "optionValueString", "value": b.Body["name"]})
	ft.reply(a, map[string]interface{}{"@type": "optionValueString", "value": a.Body["name"]})

	got := []string{<-results, <-results}
	assert.ElementsMatch(t, []string{"first=first", "second=second"}, got)
}

func TestClientSendCancel(t *testing.T) {
	d, ft := newTestDispatcher(t)
	c := d.NewClient()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := c.Send(ctx, &getOption{Name: "slow"})
		errc <- err
	}()

	req := receiveSent(t, ft)
	assert.Equal(t, 1, d.pendingCount())
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Zero(t, d.pendingCount())

	// the late answer is dropped and the loop keeps running
	ft.reply(req, map[string]interface{}{"@type": "optionValueString", "value": "late"})
	ft.incoming <- []byte(`{"@type":"updateOption","@client_id":1}`)
	select {
	case u := <-d.Updates():
		assert.Equal(t, "updateOption", u.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher stopped routing")
	}
}
