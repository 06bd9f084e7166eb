package tdclient

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
	"github.com/teranos/tlgen/tljson"
)

// Update is an incoming object that answers no request
type Update struct {
	ClientID int32
	Type     string
	Data     json.RawMessage
}

// Options configure a Dispatcher
type Options struct {
	// ReceiveTimeout bounds one Receive call, and so how long Close waits
	// for the loop to notice; defaults to one second
	ReceiveTimeout time.Duration
	// UpdateBuffer is the capacity of the update channel; defaults to 1024.
	// When it is full the receive loop waits for the consumer.
	UpdateBuffer int
	// Logger defaults to the "tdclient" project logger
	Logger *zap.SugaredLogger
}

// OptionsFromConfig builds dispatcher options from the [client] section
func OptionsFromConfig(cfg config.ClientConfig) Options {
	return Options{
		ReceiveTimeout: time.Duration(cfg.ReceiveTimeoutSeconds * float64(time.Second)),
	}
}

// Dispatcher drains a Transport on a single goroutine
type Dispatcher struct {
	transport Transport
	timeout   time.Duration
	log       *zap.SugaredLogger

	mu      sync.Mutex
	pending map[string]chan json.RawMessage // @extra -> waiting request
	closed  bool

	updates   chan Update
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewDispatcher starts the receive loop over t
func NewDispatcher(t Transport, opts Options) *Dispatcher {
	if opts.ReceiveTimeout <= 0 {
		opts.ReceiveTimeout = time.Second
	}
	if opts.UpdateBuffer <= 0 {
		opts.UpdateBuffer = 1024
	}
	if opts.Logger == nil {
		opts.Logger = logger.Named("tdclient")
	}

	d := &Dispatcher{
		transport: t,
		timeout:   opts.ReceiveTimeout,
		log:       opts.Logger,
		pending:   make(map[string]chan json.RawMessage),
		updates:   make(chan Update, opts.UpdateBuffer),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Updates streams everything without an "@extra". The channel is closed
// after Close.
func (d *Dispatcher) Updates() <-chan Update {
	return d.updates
}

// NewClient creates a TDLib instance served by this dispatcher
func (d *Dispatcher) NewClient() *Client {
	id := d.transport.CreateClientID()
	d.log.Debugw("Created client", "client_id", id)
	return &Client{id: id, d: d}
}

// Close stops the receive loop and fails every pending request with
// errors.ErrClosed. It is safe to call more than once.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		n := len(d.pending)
		d.pending = make(map[string]chan json.RawMessage)
		d.mu.Unlock()

		close(d.done)
		<-d.stopped
		close(d.updates)
		d.log.Debugw("Dispatcher closed", "failed_requests", n)
	})
	return nil
}

func (d *Dispatcher) run() {
	defer close(d.stopped)
	for {
		select {
		case <-d.done:
			return
		default:
		}

		data := d.transport.Receive(d.timeout)
		if data == nil {
			continue
		}
		d.route(data)
	}
}

// route hands a response to its request or publishes it as an update
func (d *Dispatcher) route(data []byte) {
	env, err := tljson.PeekEnvelope(data)
	if err != nil {
		d.log.Warnw("Dropping malformed object", "error", err, "data", string(data))
		return
	}

	if len(env.Extra) > 0 {
		var extra string
		if err := json.Unmarshal(env.Extra, &extra); err != nil {
			d.log.Warnw("Dropping response with foreign @extra", "type", env.Type, "extra", string(env.Extra))
			return
		}
		d.mu.Lock()
		ch, ok := d.pending[extra]
		delete(d.pending, extra)
		d.mu.Unlock()
		if !ok {
			// The request was cancelled before the answer arrived
			d.log.Debugw("Dropping response to abandoned request", "type", env.Type, "extra", extra)
			return
		}
		ch <- data
		return
	}

	update := Update{ClientID: -1, Type: env.Type, Data: data}
	if env.ClientID != nil {
		update.ClientID = *env.ClientID
	}
	select {
	case d.updates <- update:
	case <-d.done:
	}
}

// reserve registers a pending request and returns its correlation id
func (d *Dispatcher) reserve(extra string) (chan json.RawMessage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.Wrap(errors.ErrClosed, "dispatcher")
	}
	ch := make(chan json.RawMessage, 1)
	d.pending[extra] = ch
	return ch, nil
}

func (d *Dispatcher) release(extra string) {
	d.mu.Lock()
	delete(d.pending, extra)
	d.mu.Unlock()
}

func (d *Dispatcher) pendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
