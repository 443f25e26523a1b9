package domain

import (
	"reflect"
	"testing"
)

func TestParseArtifactRef(t *testing.T) {
	tests := []struct {
		in   string
		want ArtifactRef
	}{
		{"clean_sample.csv:latest", ArtifactRef{Name: "clean_sample.csv", Qualifier: "latest"}},
		{"clean_sample.csv:reference", ArtifactRef{Name: "clean_sample.csv", Qualifier: "reference"}},
		{"random_forest_model:prod", ArtifactRef{Name: "random_forest_model", Qualifier: "prod"}},
		{"sample.csv:v3", ArtifactRef{Name: "sample.csv", Qualifier: "v3"}},
		{"sample.csv", ArtifactRef{Name: "sample.csv", Qualifier: "latest"}},
		{"sample.csv:", ArtifactRef{Name: "sample.csv", Qualifier: "latest"}},
	}
	for _, tt := range tests {
		if got := ParseArtifactRef(tt.in); got != tt.want {
			t.Errorf("ParseArtifactRef(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestArtifactRefString(t *testing.T) {
	ref := ArtifactRef{Name: "sample.csv"}
	if ref.String() != "sample.csv:latest" {
		t.Errorf("String() = %q, want sample.csv:latest", ref.String())
	}
}

func TestArtifactHandleRef(t *testing.T) {
	handle := ArtifactHandle{Name: "clean_sample.csv", Version: 7}
	if handle.Ref() != "clean_sample.csv:v7" {
		t.Errorf("Ref() = %q, want clean_sample.csv:v7", handle.Ref())
	}
}

func TestRunLifecycle(t *testing.T) {
	run := NewRun("nyc_airbnb", "development", []string{"download", "basic_cleaning"})

	if run.Status != RunStatusPending {
		t.Errorf("new run status = %s, want PENDING", run.Status)
	}
	if run.IsFinished() {
		t.Error("new run should not be finished")
	}
	if run.Duration() != 0 {
		t.Error("unstarted run should have zero duration")
	}

	run.MarkRunning()
	if run.Status != RunStatusRunning || run.StartedAt == nil {
		t.Errorf("after MarkRunning: status=%s startedAt=%v", run.Status, run.StartedAt)
	}

	run.MarkFailed("step data_check: row count outside expected range")
	if run.Status != RunStatusFailed {
		t.Errorf("status = %s, want FAILED", run.Status)
	}
	if !run.IsFinished() {
		t.Error("failed run should be finished")
	}
	if run.Error == "" {
		t.Error("failed run should carry an error message")
	}
	if run.FinishedAt == nil || run.FinishedAt.Before(*run.StartedAt) {
		t.Error("finish time should be set and not precede start time")
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	a := NewRun("p", "g", nil)
	b := NewRun("p", "g", nil)
	if a.ID == b.ID {
		t.Error("two runs should get distinct IDs")
	}
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := []StepStatus{StepStatusSucceeded, StepStatusFailed, StepStatusSkipped}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []StepStatus{StepStatusPending, StepStatusRunning} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}

	if RunStatusRunning.IsTerminal() {
		t.Error("RUNNING run status should not be terminal")
	}
	if !RunStatusSucceeded.IsTerminal() || !RunStatusFailed.IsTerminal() {
		t.Error("SUCCEEDED and FAILED should be terminal")
	}
}

func TestParameterNamesSorted(t *testing.T) {
	inv := &StepInvocation{Parameters: map[string]string{
		"min_price": "10",
		"csv":       "clean_sample.csv:v1",
		"ref":       "clean_sample.csv:v1",
	}}
	want := []string{"csv", "min_price", "ref"}
	if got := inv.ParameterNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ParameterNames() = %v, want %v", got, want)
	}
}
