package models

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"banner.png", "banner.png"},
		{"my banner.png", "my_banner.png"},
		{"صورة البانر.jpg", "___________.jpg"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"a&b=c?.webp", "a_b_c_.webp"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/banners/1712_promo.png", "banners/1712_promo"},
		{"https://res.cloudinary.com/demo/image/upload/avatars/sara.jpg", "avatars/sara"},
		{"/uploads/banners/promo.png", ""},
		{"https://cdn.example.com/banners/promo.png", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, PublicIDFromURL(tt.in))
		})
	}
}

func TestValidateImageFile(t *testing.T) {
	svc := &CloudinaryService{}

	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"png ok", "banner.png", 1024, false},
		{"jpeg ok", "photo.JPEG", 1024, false},
		{"webp ok", "art.webp", 1024, false},
		{"pdf rejected", "contract.pdf", 1024, true},
		{"no extension rejected", "banner", 1024, true},
		{"oversized rejected", "banner.png", 11 * 1024 * 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			err := svc.ValidateImageFile(header)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
