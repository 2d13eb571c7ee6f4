package cep

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefaultKeyFunc(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		trustXFF bool
		setup    func(r *http.Request)
		want     string
	}{
		{
			name:   "header wins when set",
			header: "X-Client",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:1234"
				r.Header.Set("X-Client", " client-123 ")
			},
			want: "client-123",
		},
		{
			name:   "blank header falls through",
			header: "X-Client",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:1234"
				r.Header.Set("X-Client", "   ")
			},
			want: "10.0.0.1",
		},
		{
			name:     "first X-Forwarded-For hop when trusted",
			trustXFF: true,
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.9:5555"
				r.Header.Set("X-Forwarded-For", "200.1.2.3, 5.6.7.8")
			},
			want: "200.1.2.3",
		},
		{
			name: "X-Forwarded-For ignored when not trusted",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.9:5555"
				r.Header.Set("X-Forwarded-For", "200.1.2.3")
			},
			want: "10.0.0.9",
		},
		{
			name: "remote addr without port",
			setup: func(r *http.Request) {
				r.RemoteAddr = "pipe"
			},
			want: "pipe",
		},
		{
			name: "nothing known",
			setup: func(r *http.Request) {
				r.RemoteAddr = ""
			},
			want: "unknown",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "http://example/", nil)
			tc.setup(r)
			if got := DefaultKeyFunc(tc.header, tc.trustXFF)(r); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
