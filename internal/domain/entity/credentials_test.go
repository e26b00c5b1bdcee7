package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Merge(t *testing.T) {
	tests := []struct {
		name     string
		given    Credentials
		fallback Credentials
		want     Credentials
	}{
		{
			name:     "explicit fields win",
			given:    Credentials{Email: "a@x", Password: "p1"},
			fallback: Credentials{Email: "b@x", Password: "p2"},
			want:     Credentials{Email: "a@x", Password: "p1"},
		},
		{
			name:     "fills per field",
			given:    Credentials{Email: "a@x"},
			fallback: Credentials{Email: "b@x", Password: "p2"},
			want:     Credentials{Email: "a@x", Password: "p2"},
		},
		{
			name:     "both absent",
			given:    Credentials{},
			fallback: Credentials{Password: "p2"},
			want:     Credentials{Password: "p2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.given.Merge(tt.fallback)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Email != "" && tt.want.Password != "", got.Complete())
		})
	}
}
