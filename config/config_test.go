package config_test

import (
	"testing"

	"rik-restaurant/config"

	"github.com/stretchr/testify/assert"
)

func TestRequireJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "unset", secret: "", wantErr: config.ErrMissingJWTSecret},
		{name: "blank", secret: "   ", wantErr: config.ErrMissingJWTSecret},
		{name: "set", secret: "s3cret"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testCase.secret)
			cfg := config.Load("8081")
			assert.Equal(t, testCase.secret, cfg.JWTSecret)

			err := cfg.RequireJWTSecret()
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
