package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handler   Handler = NewLogHandler(false)
	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler and returns the previous one,
// so callers can restore it when they are done. Passing nil installs a
// non-verbose LogHandler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = NewLogHandler(false)
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func currentHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends err to the global handler. A zero Timestamp is set to now and
// an unknown Kind is derived from the wrapped error, so a position error
// reported without a kind arrives as KindRange.
func Report(err *ChipError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == KindUnknown {
		err.Kind = kindOf(err.Err)
	}
	currentHandler().HandleError(err)
}

func kindOf(err error) Kind {
	var ie *IndexError
	var pe *PanicError
	switch {
	case As(err, &ie):
		return KindRange
	case As(err, &pe):
		return KindPanic
	default:
		return KindUnknown
	}
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Guard runs fn and reports a panic raised inside it, typically by an
// observer called from a data source mutation. It returns true if fn
// panicked.
func Guard(op string, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
		}
	}()
	fn()
	return false
}

// CaptureStack returns the call stack of its caller's caller, one frame per
// function.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
		if !more {
			return sb.String()
		}
	}
}
