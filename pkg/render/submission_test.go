package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fitm8/pkg/render"
)

func TestMergeHiddenFields(t *testing.T) {
	got := render.MergeHiddenFields(
		map[string]string{" redirect ": "/old", "": "dropped"},
		render.RedirectField("/signup"),
		render.Hidden("attempt", 2),
		render.Hidden("  ", "ignored"),
	)
	want := map[string]string{"redirect": "/signup", "attempt": "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}

	if render.MergeHiddenFields(nil) != nil {
		t.Fatalf("expected nil when nothing is merged")
	}
}

func TestSortedHiddenFields(t *testing.T) {
	got := render.SortedHiddenFields(map[string]string{"redirect": "/", "attempt": "1", "": "x"})
	want := []render.HiddenField{
		{Name: "attempt", Value: "1"},
		{Name: "redirect", Value: "/"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted fields mismatch (-want +got):\n%s", diff)
	}
}
