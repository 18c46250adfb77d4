package fractalgarden

import (
	"fmt"
	"sync"
)

var logMu sync.Mutex

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logf("[DEBUG] "+format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		logf("[DEBUG] "+format, args...)
	})
}

// InfoLog prints regardless of Debug.
func InfoLog(format string, args ...interface{}) {
	logf("[INFO] "+format, args...)
}

func logf(format string, args ...interface{}) {
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(Output, format+"\n", args...)
}
