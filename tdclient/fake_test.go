package tdclient

import (
	"encoding/json"
	"sync"
	"time"
)

type sentRequest struct {
	ClientID int32
	Body     map[string]interface{}
}

// fakeTransport is an in-memory TDLib: sent requests show up on sent and
// anything pushed to incoming is returned by Receive
type fakeTransport struct {
	sent     chan sentRequest
	incoming chan []byte

	mu       sync.Mutex
	nextID   int32
	logMax   int32
	logFn    LogFunc
	logCalls int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		sent:     make(chan sentRequest, 16),
		incoming: make(chan []byte, 16),
	}
}

func (f *fakeTransport) CreateClientID() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID
}

func (f *fakeTransport) Send(clientID int32, request []byte) {
	var body map[string]interface{}
	if err := json.Unmarshal(request, &body); err != nil {
		panic(err)
	}
	f.sent <- sentRequest{ClientID: clientID, Body: body}
}

func (f *fakeTransport) Receive(timeout time.Duration) []byte {
	select {
	case data := <-f.incoming:
		return data
	case <-time.After(timeout):
		return nil
	}
}

func (f *fakeTransport) SetLogHandler(maxVerbosity int32, fn LogFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logMax = maxVerbosity
	f.logFn = fn
	f.logCalls++
}

func (f *fakeTransport) logHandler() (int32, LogFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logMax, f.logFn
}

// reply answers req with obj, copying its @extra and client id
func (f *fakeTransport) reply(req sentRequest, obj map[string]interface{}) {
	obj["@extra"] = req.Body["@extra"]
	obj["@client_id"] = req.ClientID
	data, err := json.Marshal(obj)
	if err != nil {
		panic(err)
	}
	f.incoming <- data
}
