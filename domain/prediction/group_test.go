package prediction

import (
	"errors"
	"testing"
)

func det(path string) *Prediction {
	return New(Fields{"x": 10.0, "y": 10.0, "width": 4.0, "height": 6.0}, path, ObjectDetection)
}

func cls(path string) *Prediction {
	return New(Fields{"top": "cat", "confidence": "0.9"}, path, Classification)
}

func TestNewGroup_BaseFromFirst(t *testing.T) {
	g, err := NewGroup(det("img.jpg"), det("img.jpg"))
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	if g.BaseImagePath() != "img.jpg" || g.BaseType() != ObjectDetection {
		t.Fatalf("base = %q/%q", g.BaseImagePath(), g.BaseType())
	}
	if g.Len() != 2 {
		t.Fatalf("len = %d, want 2", g.Len())
	}
}

func TestNewGroup_NilMember(t *testing.T) {
	_, err := NewGroup(det("img.jpg"), nil)
	var invalid *InvalidMemberError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidMemberError, got %v", err)
	}
}

func TestAdd_NilMember(t *testing.T) {
	empty, _ := NewGroup()
	if _, err := empty.Add(nil); err == nil {
		t.Fatalf("empty group accepted nil")
	}
	full, _ := NewGroup(det("img.jpg"))
	if _, err := full.Add(nil); err == nil {
		t.Fatalf("non-empty group accepted nil")
	}
	if full.Len() != 1 {
		t.Fatalf("rejected add changed length: %d", full.Len())
	}
}

func TestAdd_MatchingMemberNoDiagnostics(t *testing.T) {
	g, _ := NewGroup(det("img.jpg"))
	diags, err := g.Add(det("img.jpg"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if g.Len() != 2 || g.BaseImagePath() != "img.jpg" {
		t.Fatalf("len=%d base=%q", g.Len(), g.BaseImagePath())
	}
}

func TestAdd_MixedTypeDiagnostic(t *testing.T) {
	g, _ := NewGroup(det("img.jpg"))
	diags, err := g.Add(cls("img.jpg"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(diags) != 1 || diags[0].Kind != DiagMixedType {
		t.Fatalf("diags = %v, want one DiagMixedType", diags)
	}
	if g.Len() != 2 {
		t.Fatalf("member was not appended, len = %d", g.Len())
	}
}

func TestAdd_MixedPathDiagnostic(t *testing.T) {
	g, _ := NewGroup(det("img.jpg"))
	diags, err := g.Add(det("other.jpg"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(diags) != 1 || diags[0].Kind != DiagMixedPath {
		t.Fatalf("diags = %v, want one DiagMixedPath", diags)
	}
	if g.BaseImagePath() != "img.jpg" {
		t.Fatalf("base path changed to %q", g.BaseImagePath())
	}
}

func TestAdd_EmptyGroupAdoptsBase(t *testing.T) {
	g, _ := NewGroup()
	diags, err := g.Add(cls("photo.png"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("first add produced diagnostics: %v", diags)
	}
	if g.BaseImagePath() != "photo.png" || g.BaseType() != Classification {
		t.Fatalf("base = %q/%q", g.BaseImagePath(), g.BaseType())
	}
}

func TestFromResponse_OrderAndLength(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"predictions":[
		{"class":"a"},{"class":"b"},{"class":"c"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g, err := FromResponse(resp, "img.jpg", ObjectDetection)
	if err != nil {
		t.Fatalf("from response: %v", err)
	}
	if g.Len() != len(resp.Predictions) {
		t.Fatalf("len = %d, want %d", g.Len(), len(resp.Predictions))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := g.At(i).JSON()["class"]; got != want {
			t.Fatalf("member %d class = %v, want %q", i, got, want)
		}
		if g.At(i).ImagePath() != "img.jpg" {
			t.Fatalf("member %d image path = %q", i, g.At(i).ImagePath())
		}
	}
}

func TestFromResponse_Classification(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"predictions":[{"top":"cat","confidence":"0.9"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g, err := FromResponse(resp, "img.jpg", Classification)
	if err != nil {
		t.Fatalf("from response: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("len = %d, want 1", g.Len())
	}
	label, err := g.At(0).Classification()
	if err != nil {
		t.Fatalf("classification: %v", err)
	}
	if label.Top != "cat" {
		t.Fatalf("top = %q, want cat", label.Top)
	}
}

func TestString_JoinsWithBlankLines(t *testing.T) {
	a, b := det("img.jpg"), det("img.jpg")
	g, _ := NewGroup(a, b)
	want := a.String() + "\n\n" + b.String() + "\n\n"
	if g.String() != want {
		t.Fatalf("group string mismatch:\n%q", g.String())
	}
}

func TestGroupSave_NotImplemented(t *testing.T) {
	g, _ := NewGroup(det("img.jpg"))
	if err := g.Save("out.jpg"); !errors.Is(err, ErrSaveNotImplemented) {
		t.Fatalf("save = %v, want ErrSaveNotImplemented", err)
	}
}

func TestPredictions_ReturnsCopy(t *testing.T) {
	g, _ := NewGroup(det("img.jpg"))
	members := g.Predictions()
	members[0] = nil
	if g.At(0) == nil {
		t.Fatalf("mutating the returned slice reached the group")
	}
}
