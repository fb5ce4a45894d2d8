package models

import (
	"testing"
	"time"
)

func TestInputDefaults(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	ev := EventInput{Title: "t"}.Build("e1", at)
	if ev.MaxParticipants != nil {
		t.Errorf("MaxParticipants = %v, want nil", *ev.MaxParticipants)
	}
	if ev.ID != "e1" || !ev.CreatedAt.Equal(at) {
		t.Errorf("Build() id/createdAt = %q/%v, want e1/%v", ev.ID, ev.CreatedAt, at)
	}

	if got := (ProjectInput{}).Build("p1", at).Status; got != ProjectActive {
		t.Errorf("project Status = %q, want %q", got, ProjectActive)
	}
	if got := (ProjectInput{Status: ProjectCompleted}).Build("p1", at).Status; got != ProjectCompleted {
		t.Errorf("project Status = %q, want %q", got, ProjectCompleted)
	}

	if got := (BlogInput{}).Build("b1", at).IsPublished; !got {
		t.Error("blog IsPublished = false, want true by default")
	}
	unpublished := false
	if got := (BlogInput{IsPublished: &unpublished}).Build("b1", at).IsPublished; got {
		t.Error("blog IsPublished = true, want explicit false kept")
	}
}

func TestPatchApplyIsShallow(t *testing.T) {
	limit := 10
	orig := Event{ID: "e1", Title: "Old", Description: "keep", MaxParticipants: &limit}

	title := "New"
	got := EventPatch{Title: &title}.Apply(orig)

	if got.Title != "New" {
		t.Errorf("Title = %q, want %q", got.Title, "New")
	}
	if got.Description != "keep" {
		t.Errorf("Description = %q, want %q", got.Description, "keep")
	}
	if got.MaxParticipants == nil || *got.MaxParticipants != 10 {
		t.Errorf("MaxParticipants = %v, want 10", got.MaxParticipants)
	}
	if orig.Title != "Old" {
		t.Errorf("original Title mutated to %q", orig.Title)
	}
}

func TestBuildCopiesSlices(t *testing.T) {
	in := ProjectInput{Technologies: StringList{"Go"}}
	p := in.Build("p1", time.Now())
	in.Technologies[0] = "Rust"
	if p.Technologies[0] != "Go" {
		t.Errorf("Technologies[0] = %q, want %q", p.Technologies[0], "Go")
	}
}
