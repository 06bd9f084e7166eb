//go:build tdjson

package tdclient

/*
#cgo LDFLAGS: -ltdjson
#include <stdlib.h>
#include <td/telegram/td_json_client.h>

void tdclientSetLogCallback(int max_verbosity);
void tdclientClearLogCallback(void);
*/
import "C"

import (
	"sync"
	"time"
	"unsafe"
)

// TDJSON is the Transport over libtdjson. TDLib keeps one log callback per
// process, so all TDJSON values share it.
type TDJSON struct{}

// NewTDJSON returns the libtdjson transport
func NewTDJSON() *TDJSON {
	return &TDJSON{}
}

func (*TDJSON) CreateClientID() int32 {
	return int32(C.td_create_client_id())
}

func (*TDJSON) Send(clientID int32, request []byte) {
	cs := C.CString(string(request))
	defer C.free(unsafe.Pointer(cs))
	C.td_send(C.int(clientID), cs)
}

func (*TDJSON) Receive(timeout time.Duration) []byte {
	res := C.td_receive(C.double(timeout.Seconds()))
	if res == nil {
		return nil
	}
	// TDLib reuses the buffer on the next call
	return []byte(C.GoString(res))
}

var (
	logMu sync.RWMutex
	logFn LogFunc
)

func (*TDJSON) SetLogHandler(maxVerbosity int32, fn LogFunc) {
	logMu.Lock()
	logFn = fn
	logMu.Unlock()

	if fn == nil {
		C.tdclientClearLogCallback()
		return
	}
	C.tdclientSetLogCallback(C.int(maxVerbosity))
}

//export tdclientGoLog
func tdclientGoLog(verbosity C.int, message *C.char) {
	logMu.RLock()
	fn := logFn
	logMu.RUnlock()
	if fn != nil {
		fn(int32(verbosity), C.GoString(message))
	}
}
