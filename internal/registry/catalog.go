package registry

import "github.com/shaiso/Conveyor/internal/domain"

// Имена шагов pipeline.
const (
	StepDownload            = "download"
	StepBasicCleaning       = "basic_cleaning"
	StepDataCheck           = "data_check"
	StepDataSplit           = "data_split"
	StepTrainRandomForest   = "train_random_forest"
	StepTestRegressionModel = "test_regression_model"
)

// Логические имена артефактов, связывающих шаги.
const (
	ArtifactSample       = "sample.csv"
	ArtifactCleanSample  = "clean_sample.csv"
	ArtifactTrainvalData = "trainval_data.csv"
	ArtifactTestData     = "test_data.csv"
	ArtifactModel        = "random_forest_model"
)

// Default возвращает канонический каталог шагов pipeline.
//
// Порядок объявления значим: download → basic_cleaning → data_check →
// data_split → train_random_forest → test_regression_model. Каждый
// следующий шаг читает артефакты, произведённые предыдущими.
func Default() *Registry {
	return New([]StepDef{
		{
			Name:       StepDownload,
			Source:     SourceComponents,
			Path:       "get_data",
			EntryPoint: "main",
			Params: map[string]Param{
				"sample":               FromConfig("etl.sample"),
				"artifact_name":        Literal(ArtifactSample),
				"artifact_type":        Literal("raw_data"),
				"artifact_description": Literal("Raw file as downloaded"),
			},
			Produces: []string{ArtifactSample},
		},
		{
			Name:       StepBasicCleaning,
			Source:     SourceLocal,
			Path:       "src/basic_cleaning",
			EntryPoint: "main",
			Params: map[string]Param{
				"input_artifact":     FromArtifact(ArtifactSample, domain.QualifierLatest),
				"output_artifact":    Literal(ArtifactCleanSample),
				"output_type":        Literal("clean_sample"),
				"output_description": Literal("Data with outliers and null values removed"),
				"min_price":          FromConfig("etl.min_price"),
				"max_price":          FromConfig("etl.max_price"),
			},
			Produces: []string{ArtifactCleanSample},
		},
		{
			Name:       StepDataCheck,
			Source:     SourceLocal,
			Path:       "src/data_check",
			EntryPoint: "main",
			Params: map[string]Param{
				"csv":          FromArtifact(ArtifactCleanSample, domain.QualifierLatest),
				"ref":          FromArtifact(ArtifactCleanSample, domain.QualifierReference),
				"kl_threshold": FromConfig("data_check.kl_threshold"),
				"min_price":    FromConfig("etl.min_price"),
				"max_price":    FromConfig("etl.max_price"),
			},
		},
		{
			Name:       StepDataSplit,
			Source:     SourceComponents,
			Path:       "train_val_test_split",
			EntryPoint: "main",
			Params: map[string]Param{
				"input":       FromArtifact(ArtifactCleanSample, domain.QualifierLatest),
				"test_size":   FromConfig("modeling.test_size"),
				"stratify_by": FromConfig("modeling.stratify_by"),
				"random_seed": FromConfig("modeling.random_seed"),
			},
			Produces: []string{ArtifactTrainvalData, ArtifactTestData},
		},
		{
			Name:       StepTrainRandomForest,
			Source:     SourceLocal,
			Path:       "src/train_random_forest",
			EntryPoint: "main",
			Params: map[string]Param{
				"trainval_artifact":  FromArtifact(ArtifactTrainvalData, domain.QualifierLatest),
				"val_size":           FromConfig("modeling.val_size"),
				"random_seed":        FromConfig("modeling.random_seed"),
				"stratify_by":        FromConfig("modeling.stratify_by"),
				"rf_config":          ParamsFile("modeling.random_forest"),
				"max_tfidf_features": FromConfig("modeling.max_tfidf_features"),
				"output_artifact":    Literal(ArtifactModel),
			},
			Produces: []string{ArtifactModel},
		},
		{
			Name:       StepTestRegressionModel,
			Source:     SourceComponents,
			Path:       "test_regression_model",
			EntryPoint: "main",
			Params: map[string]Param{
				"mlflow_model": FromArtifact(ArtifactModel, domain.QualifierProd),
				"test_dataset": FromArtifact(ArtifactTestData, domain.QualifierLatest),
			},
		},
	})
}
