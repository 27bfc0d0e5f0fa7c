package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicPath(t *testing.T) {
	cases := []struct {
		path   string
		public bool
	}{
		{"/auth/login", true},
		{"/auth/register", true},
		{"/client/login", true},
		{"/", true},
		{"/index", true},
		{"/index.html", true},
		{"/favicon.ico", true},
		{"/frontend/app.js", true},
		{"/static/css/main.css", true},
		{"/assets/logo.png", true},

		{"/auth/login/extra", false},
		{"/client/create", false},
		{"/client/load-clients", false},
		{"/user/load-details", false},
		{"/document/upload", false},
		{"/indexes", false},
		{"/frontend", false},
		{"/health/ready", false},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.public, IsPublicPath(tc.path))
		})
	}
}
