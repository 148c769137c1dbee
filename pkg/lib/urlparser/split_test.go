package urlparser_test

import (
	"testing"

	"shopapi/pkg/lib/urlparser"

	"github.com/stretchr/testify/assert"
)

func TestParseId(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: " 42 ", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := urlparser.ParseId(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, urlparser.ErrInvalidId)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUsername(t *testing.T) {
	got, err := urlparser.ParseUsername(" alice ")
	assert.NoError(t, err)
	assert.Equal(t, "alice", got)

	for _, raw := range []string{"", "   ", "a b", "a/b"} {
		_, err := urlparser.ParseUsername(raw)
		assert.ErrorIs(t, err, urlparser.ErrInvalidUsername, raw)
	}
}
