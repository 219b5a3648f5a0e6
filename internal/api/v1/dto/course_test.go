package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"courseapi/internal/model"
)

func TestNewCourseResponseWireShape(t *testing.T) {
	desc := "Scala is a multi-paradigm, general-purpose programming language."
	created := time.Date(2021, 3, 21, 13, 0, 29, 232276000, time.UTC)
	c := &model.Course{
		ID:            801,
		Title:         "The Art of Scala",
		OnDiscount:    false,
		Price:         20.0,
		DiscountPrice: 2.0,
		Description:   &desc,
		DateCreated:   created,
		DateUpdated:   created,
	}

	raw, err := json.Marshal(NewCourseResponse(c))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(raw)

	for _, want := range []string{
		`"id":801`,
		`"price":"20.0"`,
		`"discount_price":"2.0"`,
		`"on_discount":false`,
		`"date_created":"2021-03-21T13:00:29.232276Z"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("response missing %s:\n%s", want, s)
		}
	}
	// Optional fields absent from the record serialize as null.
	if !strings.Contains(s, `"image_path":null`) {
		t.Errorf("expected null image_path:\n%s", s)
	}
}

func TestNewCourseListResponseNeverNil(t *testing.T) {
	out := NewCourseListResponse(nil)
	if out == nil {
		t.Fatal("empty list must serialize as [], not null")
	}
	raw, _ := json.Marshal(out)
	if string(raw) != "[]" {
		t.Fatalf("got %s, want []", raw)
	}
}

func TestCourseSheetRowDefaults(t *testing.T) {
	var row CourseSheetRow
	if err := json.Unmarshal([]byte(`{"title": "One", "price": 10.0, "discount_price": 1.0}`), &row); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	c := row.ToModel()
	if c.OnDiscount {
		t.Fatal("on_discount must default to false in sheet rows")
	}
	if !c.DateCreated.IsZero() || !c.DateUpdated.IsZero() {
		t.Fatal("absent timestamps must stay zero so the store assigns them")
	}
}
