package server_test

import (
	"testing"

	"mnp-alarm/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
	assert.Equal(t, ":9100", server.Config{Port: "9100"}.Address())
}

func TestConfig_AuthEnabled(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"WithKey", "secret", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ApiKey: tt.apiKey}
			assert.Equal(t, tt.want, c.AuthEnabled())
		})
	}
}
