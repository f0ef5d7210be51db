package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxLoggedBody = 1024

// Request bodies on these paths carry credentials and are never logged.
var sensitivePrefixes = []string{"/api/user/"}

type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func loggedBody(r *http.Request) string {
	for _, p := range sensitivePrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return "[redacted]"
		}
	}
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
	if err != nil {
		return ""
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(data), r.Body), r.Body}
	return string(data)
}

func LogMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			body := loggedBody(r)

			rec := &responseRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			logger.Infof("uri=%s method=%s status=%d size=%d duration=%s body=%s outputheaders=%v",
				r.RequestURI, r.Method, rec.status, rec.size, time.Since(start), body, rec.Header())
		})
	}
}
