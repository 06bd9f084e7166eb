// Package tdclient talks to TDLib through its JSON interface. A Dispatcher
// owns the only receive loop, hands responses back to the request that
// caused them and streams everything else as updates.
//
//	d := tdclient.NewDispatcher(tdclient.NewTDJSON(), tdclient.Options{})
//	defer d.Close()
//	c := d.NewClient()
//	me, err := tdclient.Send(ctx, c, &tdapi.GetMe{})
package tdclient

import "time"

// Transport is the raw TDLib JSON interface. Implementations must allow
// Send from any goroutine; Receive is only ever called by one goroutine.
type Transport interface {
	// CreateClientID returns the identifier of a new TDLib instance. The
	// instance starts once the first request is sent with it.
	CreateClientID() int32
	// Send queues a request for a client; it never blocks on the answer
	Send(clientID int32, request []byte)
	// Receive waits up to timeout for the next response or update and
	// returns nil when none arrived
	Receive(timeout time.Duration) []byte
	// SetLogHandler installs the callback for TDLib log messages up to
	// maxVerbosity; a nil fn removes it. TDLib must not be called from fn.
	SetLogHandler(maxVerbosity int32, fn LogFunc)
}

// LogFunc receives one TDLib log message
type LogFunc func(verbosity int32, message string)
