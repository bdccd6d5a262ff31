package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetaTags(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<title>Standing Desk | MegaStore</title>
		<meta property="og:title" content="Electric Standing Desk">
		<meta name="twitter:title" content="Should Not Win">
		<meta property="og:image" content="https://cdn.example.com/desk.jpg">
		<meta property="og:price:amount" content="399.00">
	</head><body></body></html>`)

	got := extractMetaTags(doc)
	assert.Equal(t, "Electric Standing Desk", got.Title)
	assert.Equal(t, "https://cdn.example.com/desk.jpg", got.ImageURL)
	assert.Equal(t, 399.0, got.Price)
}

func TestExtractMetaTagsTitleFallbackChain(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "twitter title when no og",
			html: `<head><meta name="twitter:title" content="Twitter Title"><title>Doc Title</title></head>`,
			want: "Twitter Title",
		},
		{
			name: "meta title when no social tags",
			html: `<head><meta name="title" content="Plain Meta Title"></head>`,
			want: "Plain Meta Title",
		},
		{
			name: "document title last",
			html: `<head><title>  Leather   Tote  </title></head>`,
			want: "Leather Tote",
		},
		{
			name: "nothing",
			html: `<head></head>`,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractMetaTags(mustDoc(t, "<html>"+tc.html+"<body></body></html>"))
			assert.Equal(t, tc.want, got.Title)
		})
	}
}

func TestStripSiteSuffix(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Running Shoes - Nike.com", "Running Shoes"},
		{"Running Shoes | Zappos", "Running Shoes"},
		{"Coffee Maker – Target", "Coffee Maker"},
		{"Plain Product Name", "Plain Product Name"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, stripSiteSuffix(tc.input), "input %q", tc.input)
	}
}

func TestExtractMetaTagsImagePriority(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="og:image:secure_url" content="https://cdn.example.com/secure.jpg">
		<meta property="og:image" content="https://cdn.example.com/plain.jpg">
		<meta name="twitter:image" content="https://cdn.example.com/tw.jpg">
	</head><body></body></html>`)

	assert.Equal(t, "https://cdn.example.com/secure.jpg", extractMetaTags(doc).ImageURL)
}

func TestExtractMetaTagsUnparsablePrice(t *testing.T) {
	doc := mustDoc(t, `<html><head>
		<meta property="product:price:amount" content="call for price">
	</head><body></body></html>`)

	assert.Zero(t, extractMetaTags(doc).Price)
}
