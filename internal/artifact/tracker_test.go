package artifact

import (
	"context"
	"errors"
	"testing"

	"github.com/shaiso/Conveyor/internal/domain"
)

func TestMemoryTracker_RegisterAndResolveLatest(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	first, err := tracker.Register(ctx, "sample.csv", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Version != 1 {
		t.Errorf("first version = %d, want 1", first.Version)
	}

	second, err := tracker.Register(ctx, "sample.csv", "s3://bucket/sample")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Version != 2 {
		t.Errorf("second version = %d, want 2", second.Version)
	}

	latest, err := tracker.Resolve(ctx, "sample.csv", domain.QualifierLatest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Version != 2 {
		t.Errorf("latest version = %d, want 2", latest.Version)
	}
	if latest.URI != "s3://bucket/sample" {
		t.Errorf("latest URI = %q", latest.URI)
	}
}

func TestMemoryTracker_ResolveVersionToken(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	tracker.Register(ctx, "sample.csv", "")
	tracker.Register(ctx, "sample.csv", "")

	handle, err := tracker.Resolve(ctx, "sample.csv", "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Version != 1 {
		t.Errorf("version = %d, want 1", handle.Version)
	}

	if _, err := tracker.Resolve(ctx, "sample.csv", "v9"); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound for missing version, got %v", err)
	}
	if _, err := tracker.Resolve(ctx, "sample.csv", "vx"); !errors.Is(err, ErrBadQualifier) {
		t.Errorf("expected ErrBadQualifier, got %v", err)
	}
}

func TestMemoryTracker_Labels(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	tracker.Register(ctx, "clean_sample.csv", "")
	tracker.Register(ctx, "clean_sample.csv", "")

	if err := tracker.Label(ctx, "clean_sample.csv", domain.QualifierReference, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	handle, err := tracker.Resolve(ctx, "clean_sample.csv", domain.QualifierReference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Version != 1 {
		t.Errorf("reference version = %d, want 1", handle.Version)
	}

	// Reassigning the label changes the resolution deterministically.
	if err := tracker.Label(ctx, "clean_sample.csv", domain.QualifierReference, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	handle, _ = tracker.Resolve(ctx, "clean_sample.csv", domain.QualifierReference)
	if handle.Version != 2 {
		t.Errorf("reference version after relabel = %d, want 2", handle.Version)
	}
}

func TestMemoryTracker_NotFound(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	// Unknown name and unknown label are the same error kind.
	if _, err := tracker.Resolve(ctx, "nope.csv", domain.QualifierLatest); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}

	tracker.Register(ctx, "model", "")
	if _, err := tracker.Resolve(ctx, "model", domain.QualifierProd); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound for unassigned label, got %v", err)
	}

	if err := tracker.Label(ctx, "model", domain.QualifierProd, 5); !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound labelling missing version, got %v", err)
	}
}

func TestResolver_ProducedTakesPrecedenceForLatest(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	tracker.Register(ctx, "sample.csv", "")
	resolver := NewResolver(tracker)

	// Before anything is produced in-run, latest comes from the tracker.
	handle, err := resolver.Resolve(ctx, domain.ArtifactRef{Name: "sample.csv", Qualifier: domain.QualifierLatest})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Version != 1 {
		t.Errorf("version = %d, want 1", handle.Version)
	}

	produced, _ := tracker.Register(ctx, "sample.csv", "")
	resolver.Record(produced)

	handle, err = resolver.Resolve(ctx, domain.ArtifactRef{Name: "sample.csv", Qualifier: domain.QualifierLatest})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Version != produced.Version {
		t.Errorf("version = %d, want produced %d", handle.Version, produced.Version)
	}
}

func TestResolver_LabelsBypassProducedRecord(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	tracker.Register(ctx, "model", "")
	tracker.Label(ctx, "model", domain.QualifierProd, 1)

	resolver := NewResolver(tracker)
	newer, _ := tracker.Register(ctx, "model", "")
	resolver.Record(newer)

	// prod still resolves through the tracker, not the in-run record.
	handle, err := resolver.Resolve(ctx, domain.ArtifactRef{Name: "model", Qualifier: domain.QualifierProd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Version != 1 {
		t.Errorf("prod version = %d, want 1", handle.Version)
	}
}

func TestResolver_EmptyQualifierMeansLatest(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	resolver := NewResolver(tracker)
	produced, _ := tracker.Register(ctx, "sample.csv", "")
	resolver.Record(produced)

	handle, err := resolver.Resolve(ctx, domain.ArtifactRef{Name: "sample.csv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != produced {
		t.Errorf("handle = %+v, want produced %+v", handle, produced)
	}
}

func TestResolver_ProducedReturnsCopy(t *testing.T) {
	resolver := NewResolver(NewMemoryTracker())
	resolver.Record(domain.ArtifactHandle{Name: "a", Version: 1})

	snapshot := resolver.Produced()
	snapshot["a"] = domain.ArtifactHandle{Name: "a", Version: 99}

	if got := resolver.Produced()["a"].Version; got != 1 {
		t.Errorf("record mutated through copy, version = %d", got)
	}
}
