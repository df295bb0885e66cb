package utils

import (
	"os"
	"runtime"
	"time"
)

// PanicRecover recovers a panic and returns its stack trace and the
// recovered value, matching the recovery idiom used at the top of main.
func PanicRecover() (stack string, recovered interface{}) {
	if r := recover(); r != nil {
		const size = 64 << 10
		buf := make([]byte, size)
		buf = buf[:runtime.Stack(buf, false)]
		return string(buf), r
	}
	return "", nil
}

// TimeNowMillisecond returns the current time as Unix milliseconds.
func TimeNowMillisecond() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

// FileExists reports whether path exists and is statable.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
