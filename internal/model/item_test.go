package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemWebURIs(t *testing.T) {
	tests := []struct {
		name string
		uris []string
		want []string
	}{
		{
			name: "android identifiers filtered case-insensitively",
			uris: []string{
				"https://github.com",
				"AndroidApp://com.github.android",
				"internal.example.com",
				"androidapp://com.example.app",
			},
			want: []string{"https://github.com", "internal.example.com"},
		},
		{
			name: "android only",
			uris: []string{"androidapp://com.example.app"},
			want: []string{},
		},
		{
			name: "no uris",
			uris: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{URIs: tt.uris}
			assert.Equal(t, tt.want, item.WebURIs())
		})
	}
}

func TestItemJoinedURIs(t *testing.T) {
	item := Item{URIs: []string{"https://a.com", "https://b.com"}}
	assert.Equal(t, "https://a.com,https://b.com", item.JoinedURIs())

	empty := Item{}
	assert.Equal(t, "", empty.JoinedURIs())
}
