package apperror

import (
	"errors"
	"testing"
)

func TestCourseNotFoundMessage(t *testing.T) {
	err := CourseNotFound("42")
	if err.Error() != "Course 42 does not exist" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected error to match ErrNotFound")
	}
}

func TestMissingFieldsCollectsAll(t *testing.T) {
	err := MissingFields([]string{"on_discount", "price", "title"})
	want := "Please provide the value for field : on_discount,price,title"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected error to match ErrValidation")
	}
}

func TestQueryWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Query(cause)
	if !errors.Is(err, ErrQuery) {
		t.Fatal("expected error to match ErrQuery")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected error to wrap its cause")
	}
	if err.Error() != "Error in saving Course data." {
		t.Fatalf("caller-facing message leaked detail: %q", err.Error())
	}
}

func TestImportKind(t *testing.T) {
	err := Import(errors.New("bad json"))
	if !errors.Is(err, ErrImport) {
		t.Fatal("expected error to match ErrImport")
	}
	if err.Error() != "Error in course data upload . Please try Again" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
