package server_test

import (
	"testing"

	"stock-regul/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsSecured(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"WithKey", "s3cret", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ApiKey: tt.apiKey}
			assert.Equal(t, tt.want, c.IsSecured())
		})
	}
}
