package storage

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(3, "cat.png")

	parts := strings.SplitN(key, "_", 3)
	require.Len(t, parts, 3)
	require.Equal(t, "3", parts[0])
	require.NotEmpty(t, parts[1], "key carries a timestamp component")
	require.Equal(t, "cat.png", parts[2])
}

func TestObjectKey_DistinctAuthorsSameInstant(t *testing.T) {
	// Even when two calls land in the same microsecond, different authors or
	// filenames keep the keys apart.
	a := ObjectKey(1, "cat.png")
	b := ObjectKey(2, "cat.png")
	require.NotEqual(t, a, b)

	c := ObjectKey(1, "dog.png")
	require.NotEqual(t, a, c)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cat.png", "cat.png"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"zdjęcie łódź.png", "zdj_cie___d_.png"},
		{"...", "upload"},
		{"", "upload"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestDeliveryLink(t *testing.T) {
	key := ObjectKey(3, "cat.png")
	link := DeliveryLink("d111example.cloudfront.net", key)

	require.Equal(t, fmt.Sprintf("https://d111example.cloudfront.net/%s", key), link)
	require.True(t, strings.HasPrefix(link, "https://"))
}
