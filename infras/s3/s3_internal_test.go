package s3

import (
	"testing"
	"tourdesk/config"

	"github.com/stretchr/testify/assert"
)

func newStore() *s3Impl {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "tourdesk"
	cfg.External.S3.PublicDomain = "https://cdn.tourdesk.vn/"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	return &s3Impl{cfg: cfg}
}

func TestGetObjectNameFromURL(t *testing.T) {
	store := newStore()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "url returned by upload", url: store.publicURL(objectKey("payment", "r.pdf")), want: "r.pdf"},
		{name: "public domain with bucket", url: "https://cdn.tourdesk.vn/tourdesk/tour_template/halong.png", want: "halong.png"},
		{name: "api endpoint", url: "https://s3.example.com/tourdesk/user/avatar.jpg", want: "avatar.jpg"},
		{name: "foreign host", url: "https://other.example.com/user/avatar.jpg", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.GetObjectNameFromURL("", tt.url))
		})
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "service_type/bus.svg", objectKey("service_type", "bus.svg"))
	assert.Equal(t, "payment/receipt.pdf", objectKey("payment", "../../receipt.pdf"))
}

func TestBucketAndPublicURL(t *testing.T) {
	store := newStore()

	assert.Equal(t, "tourdesk", store.bucket(""))
	assert.Equal(t, "archive", store.bucket("archive"))
	assert.Equal(t, "https://cdn.tourdesk.vn/user/a.png", store.publicURL("user/a.png"))
}
