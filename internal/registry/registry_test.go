package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shaiso/Conveyor/internal/domain"
)

var fullOrder = []string{
	StepDownload,
	StepBasicCleaning,
	StepDataCheck,
	StepDataSplit,
	StepTrainRandomForest,
	StepTestRegressionModel,
}

func TestDefault_Order(t *testing.T) {
	reg := Default()

	if !reflect.DeepEqual(reg.Names(), fullOrder) {
		t.Errorf("Names() = %v, want %v", reg.Names(), fullOrder)
	}
	if reg.Size() != len(fullOrder) {
		t.Errorf("Size() = %d, want %d", reg.Size(), len(fullOrder))
	}
}

func TestResolve_Known(t *testing.T) {
	reg := Default()

	step, err := reg.Resolve(StepBasicCleaning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Source != SourceLocal {
		t.Errorf("Source = %q, want local", step.Source)
	}
	if step.Params["input_artifact"].Artifact.Name != ArtifactSample {
		t.Errorf("input_artifact references %q, want %q",
			step.Params["input_artifact"].Artifact.Name, ArtifactSample)
	}
}

func TestResolve_Unknown(t *testing.T) {
	reg := Default()

	_, err := reg.Resolve("no_such_step")
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestSelect_All(t *testing.T) {
	reg := Default()

	active, err := reg.Select(SelectorAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(active, fullOrder) {
		t.Errorf("Select(all) = %v, want full registry order", active)
	}
}

func TestSelect_SubsetKeepsRegistryOrder(t *testing.T) {
	reg := Default()

	// Selection order is advisory only: registry order wins.
	active, err := reg.Select("data_check,download")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{StepDownload, StepDataCheck}
	if !reflect.DeepEqual(active, want) {
		t.Errorf("Select = %v, want %v", active, want)
	}
}

func TestSelect_TrimsSpaces(t *testing.T) {
	reg := Default()

	active, err := reg.Select(" download , basic_cleaning ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{StepDownload, StepBasicCleaning}
	if !reflect.DeepEqual(active, want) {
		t.Errorf("Select = %v, want %v", active, want)
	}
}

func TestSelect_UnknownName(t *testing.T) {
	reg := Default()

	_, err := reg.Select("download,bogus")
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestSelect_Empty(t *testing.T) {
	reg := Default()

	for _, selector := range []string{"", "  ", ","} {
		if _, err := reg.Select(selector); !errors.Is(err, ErrEmptySelection) {
			t.Errorf("Select(%q): expected ErrEmptySelection, got %v", selector, err)
		}
	}
}

func TestDefault_ArtifactChain(t *testing.T) {
	reg := Default()

	// Each consumed artifact must be produced by an earlier step
	// (except the reference/prod labels resolved from the tracker).
	produced := make(map[string]bool)
	for _, name := range reg.Names() {
		step, _ := reg.Resolve(name)
		for paramName, param := range step.Params {
			if param.Kind != ParamArtifact {
				continue
			}
			if param.Artifact.Qualifier != domain.QualifierLatest {
				continue
			}
			if !produced[param.Artifact.Name] {
				t.Errorf("step %s parameter %s consumes %s before any step produces it",
					name, paramName, param.Artifact.Name)
			}
		}
		for _, out := range step.Produces {
			produced[out] = true
		}
	}
}
