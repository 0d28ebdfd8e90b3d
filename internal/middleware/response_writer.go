package middleware

import (
	"net/http"
	"sync/atomic"
)

const defaultStatus = http.StatusOK

// StatusRecorder wraps http.ResponseWriter so the request logger can report
// the status code and bytes written.
type StatusRecorder struct {
	http.ResponseWriter

	status        int
	headerWritten bool
	bytesSent     atomic.Int64
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{
		ResponseWriter: w,
		status:         defaultStatus,
	}
}

func (w *StatusRecorder) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *StatusRecorder) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(defaultStatus)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytesSent.Add(int64(n))
	return n, err
}

func (w *StatusRecorder) Status() int {
	return w.status
}

func (w *StatusRecorder) BytesWritten() int {
	return int(w.bytesSent.Load())
}

// InjectWriter wraps the response writer before the rest of the chain runs.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewStatusRecorder(w), r)
	})
}
