package generate

import (
	"errors"
	"testing"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		offset int
		mime   string
		want   string
	}{
		{5, "image/jpeg", "future-self-5-years.jpg"},
		{70, "image/png", "future-self-70-years.png"},
		{25, "image/webp", "future-self-25-years.webp"},
		{10, "", "future-self-10-years.jpg"}, // unknown types default to jpg
	}
	for _, tc := range cases {
		if got := Filename(tc.offset, tc.mime); got != tc.want {
			t.Errorf("Filename(%d, %q) = %q, want %q", tc.offset, tc.mime, got, tc.want)
		}
	}
}

func TestNoImageErrorUnwraps(t *testing.T) {
	err := &NoImageError{Text: "I can't generate that image."}

	if !errors.Is(err, ErrNoImage) {
		t.Error("NoImageError must unwrap to ErrNoImage")
	}
	if err.Error() == ErrNoImage.Error() {
		t.Error("explanatory text should be part of the message")
	}

	bare := &NoImageError{}
	if bare.Error() != ErrNoImage.Error() {
		t.Errorf("unexpected message for empty text: %s", bare.Error())
	}
}
