package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "amazon.com", NormalizeHost("WWW.Amazon.com"))
	assert.Equal(t, "shop.example.com", NormalizeHost("shop.example.com"))
	assert.Equal(t, "", NormalizeHost(""))
}

func TestHost(t *testing.T) {
	assert.Equal(t, "target.com", Host("https://www.target.com/p/some-item"))
	assert.Equal(t, "", Host("://not a url"))
}

func TestAbsoluteURL(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		base string
		want string
	}{
		{
			name: "protocol relative",
			raw:  "//cdn.example.com/a.jpg",
			base: "https://shop.example.com/p/1",
			want: "https://cdn.example.com/a.jpg",
		},
		{
			name: "rooted path resolves against origin",
			raw:  "/img/a.jpg",
			base: "https://shop.example.com/p/1",
			want: "https://shop.example.com/img/a.jpg",
		},
		{
			name: "relative path resolves against origin root",
			raw:  "img/a.jpg",
			base: "https://shop.example.com/p/1",
			want: "https://shop.example.com/img/a.jpg",
		},
		{
			name: "absolute passes through",
			raw:  "https://cdn.example.com/b.png",
			base: "https://shop.example.com",
			want: "https://cdn.example.com/b.png",
		},
		{
			name: "unparseable base returns input",
			raw:  "/img/a.jpg",
			base: "://bad",
			want: "/img/a.jpg",
		},
		{
			name: "empty input stays empty",
			raw:  "",
			base: "https://shop.example.com",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AbsoluteURL(tc.raw, tc.base))
		})
	}
}
