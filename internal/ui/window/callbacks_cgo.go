//go:build webkit_cgo

package window

/*
#include <stdlib.h>
*/
import "C"

import "sync"

var (
	registryMu sync.RWMutex
	registry   = make(map[uint64]*Shell)
	nextViewID uint64
)

func registerShell(s *Shell) uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextViewID++
	registry[nextViewID] = s
	return nextViewID
}

func unregisterShell(id uint64) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, id)
}

func shellByID(id C.ulong) *Shell {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[uint64(id)]
}

//export goOnScriptMessage
func goOnScriptMessage(id C.ulong, json *C.char) {
	if s := shellByID(id); s != nil && json != nil {
		s.HandleScriptMessage(C.GoString(json))
	}
}

//export goOnDownloadDestination
func goOnDownloadDestination(id C.ulong, uri, suggested *C.char) {
	if s := shellByID(id); s != nil && uri != nil {
		s.HandleDownload(C.GoString(uri), C.GoString(suggested))
	}
}
