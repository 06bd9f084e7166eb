package tdclient

import (
	"sync"

	"go.uber.org/zap"

	"github.com/teranos/tlgen/logger"
)

// LogRegistry shares the single TDLib log callback among any number of
// handlers. The transport callback is installed with the highest verbosity
// any handler asks for and removed when the last handler goes away.
type LogRegistry struct {
	transport Transport

	mu       sync.Mutex
	nextID   uint64
	handlers []logHandler
}

type logHandler struct {
	id           uint64
	maxVerbosity int32
	fn           LogFunc
}

// NewLogRegistry creates a registry for t's log callback
func NewLogRegistry(t Transport) *LogRegistry {
	return &LogRegistry{transport: t}
}

// Register adds fn for messages up to maxVerbosity. Handlers run on the
// TDLib thread that logged and must not call into TDLib. The returned
// function removes the handler; calling it again does nothing.
func (r *LogRegistry) Register(maxVerbosity int32, fn LogFunc) (unregister func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, logHandler{id: id, maxVerbosity: maxVerbosity, fn: fn})
	r.install()
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, h := range r.handlers {
				if h.id == id {
					r.handlers = append(r.handlers[:i:i], r.handlers[i+1:]...)
					break
				}
			}
			r.install()
		})
	}
}

// install updates the transport callback; r.mu must be held
func (r *LogRegistry) install() {
	if len(r.handlers) == 0 {
		r.transport.SetLogHandler(0, nil)
		return
	}
	highest := r.handlers[0].maxVerbosity
	for _, h := range r.handlers[1:] {
		if h.maxVerbosity > highest {
			highest = h.maxVerbosity
		}
	}
	r.transport.SetLogHandler(highest, r.dispatch)
}

func (r *LogRegistry) dispatch(verbosity int32, message string) {
	r.mu.Lock()
	handlers := make([]logHandler, len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.Unlock()

	for _, h := range handlers {
		if verbosity <= h.maxVerbosity {
			h.fn(verbosity, message)
		}
	}
}

// ZapLogFunc forwards TDLib log messages to l. TDLib verbosity 0 and 1 are
// fatal and error, 2 warning, 3 info; anything above is debug.
func ZapLogFunc(l *zap.SugaredLogger) LogFunc {
	return func(verbosity int32, message string) {
		switch {
		case verbosity <= 1:
			l.Errorw(message, "verbosity", verbosity)
		case verbosity == 2:
			l.Warnw(message, "verbosity", verbosity)
		case verbosity == 3:
			l.Infow(message, "verbosity", verbosity)
		default:
			l.Debugw(message, "verbosity", verbosity)
		}
	}
}

// ForwardToLogger registers a handler passing TDLib messages up to
// maxVerbosity to the "tdlib" project logger
func (r *LogRegistry) ForwardToLogger(maxVerbosity int32) (unregister func()) {
	return r.Register(maxVerbosity, ZapLogFunc(logger.Named("tdlib")))
}
