package validate

import (
	"strings"
	"testing"
)

type genreBody struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

type signupBody struct {
	Email      string `json:"email" validate:"required,email"`
	CustomerID uint64 `json:"customerId" validate:"required,gt=0"`
	Stock      int    `json:"numberInStock" validate:"gte=0"`
}

func TestGenreNameBounds(t *testing.T) {
	v := New()

	cases := []struct {
		name   string
		length int
		wantOK bool
	}{
		{"one under minimum", 4, false},
		{"exactly minimum", 5, true},
		{"exactly maximum", 50, true},
		{"one over maximum", 51, false},
	}
	for _, tc := range cases {
		err := v.Struct(genreBody{Name: strings.Repeat("x", tc.length)})
		if tc.wantOK && err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.wantOK && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestMessagesUseJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(genreBody{Name: "abc"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); got != "name must be at least 5 characters long" {
		t.Fatalf("unexpected message: %q", got)
	}

	err = v.Struct(signupBody{Email: "not-an-email", CustomerID: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); got != "email must be a valid email address" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRequiredAndNumericBounds(t *testing.T) {
	v := New()

	if err := v.Struct(signupBody{Email: "a@b.com", CustomerID: 0}); err == nil {
		t.Fatal("expected error for zero identifier")
	}
	if err := v.Struct(signupBody{CustomerID: 1}); err == nil {
		t.Fatal("expected error for missing email")
	}
	if err := v.Struct(signupBody{Email: "a@b.com", CustomerID: 1, Stock: -1}); err == nil {
		t.Fatal("expected error for negative stock")
	}
	if err := v.Struct(signupBody{Email: "a@b.com", CustomerID: 1, Stock: 0}); err != nil {
		t.Fatalf("expected zero stock to pass, got %v", err)
	}
}
