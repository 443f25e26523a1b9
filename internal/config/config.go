package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config — неизменяемый снимок конфигурации pipeline.
//
// Создаётся один раз на run функцией Load (или Parse) и дальше
// только читается. Типизированные секции покрывают известные
// namespace'ы; tree хранит полный документ для разрешения
// dotted-path ссылок из параметрических шаблонов шагов.
type Config struct {
	Main      MainConfig      `yaml:"main"`
	ETL       ETLConfig       `yaml:"etl"`
	DataCheck DataCheckConfig `yaml:"data_check"`
	Modeling  ModelingConfig  `yaml:"modeling"`

	tree map[string]any
}

// MainConfig — идентичность проекта и параметры запуска.
type MainConfig struct {
	// ProjectName — идентификатор проекта в системе трекинга.
	ProjectName string `yaml:"project_name"`

	// ExperimentName — идентификатор группировки runs.
	ExperimentName string `yaml:"experiment_name"`

	// ComponentsRepository — источник переиспользуемых компонентов
	// (шаги download, data_split, test_regression_model).
	ComponentsRepository string `yaml:"components_repository"`

	// Steps — строка выбора шагов: "all" или список через запятую.
	Steps string `yaml:"steps"`

	// Schedule — cron-выражение для conveyor-scheduler (опционально).
	Schedule string `yaml:"schedule"`
}

// ETLConfig — параметры загрузки и очистки данных.
type ETLConfig struct {
	// Sample — имя файла выборки для шага download.
	Sample string `yaml:"sample"`

	// MinPrice, MaxPrice — границы цены для отсечения выбросов.
	MinPrice float64 `yaml:"min_price"`
	MaxPrice float64 `yaml:"max_price"`
}

// DataCheckConfig — параметры проверки данных.
type DataCheckConfig struct {
	// KLThreshold — порог KL-дивергенции между выборкой и эталоном.
	KLThreshold float64 `yaml:"kl_threshold"`
}

// ModelingConfig — параметры разбиения и обучения.
type ModelingConfig struct {
	TestSize         float64 `yaml:"test_size"`
	ValSize          float64 `yaml:"val_size"`
	RandomSeed       int     `yaml:"random_seed"`
	StratifyBy       string  `yaml:"stratify_by"`
	MaxTfidfFeatures int     `yaml:"max_tfidf_features"`

	// RandomForest — вложенные гиперпараметры модели.
	// Передаются шагу обучения целиком, как JSON-документ в workspace.
	RandomForest map[string]any `yaml:"random_forest"`
}

// requiredKeys — ключи, без которых run не может начаться.
var requiredKeys = []string{
	"main.project_name",
	"main.experiment_name",
	"main.components_repository",
	"main.steps",
	"etl.sample",
	"etl.min_price",
	"etl.max_price",
	"data_check.kl_threshold",
	"modeling.test_size",
	"modeling.val_size",
	"modeling.random_seed",
	"modeling.stratify_by",
	"modeling.max_tfidf_features",
	"modeling.random_forest",
}

// Load читает YAML-документ из файла и применяет overrides.
func Load(path string, overrides []string) (*Config, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("", fmt.Sprintf("read config file: %v", err), err)
	}
	return Parse(doc, overrides)
}

// Parse разрешает конфигурацию из YAML-документа и overrides.
//
// Порядок: документ парсится в дерево, overrides применяются поверх
// (каждый ключ обязан существовать в документе), затем дерево
// валидируется на наличие обязательных ключей и декодируется в
// типизированные секции.
func Parse(doc []byte, overrides []string) (*Config, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return nil, NewConfigError("", fmt.Sprintf("parse config: %v", err), ErrBadDocument)
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	for _, override := range overrides {
		if err := applyOverride(tree, override); err != nil {
			return nil, err
		}
	}

	for _, key := range requiredKeys {
		if _, ok := lookup(tree, key); !ok {
			return nil, NewConfigError(key, "required key is missing", ErrMissingKey)
		}
	}

	// Декодируем разрешённое дерево в типизированные секции.
	resolved, err := yaml.Marshal(tree)
	if err != nil {
		return nil, NewConfigError("", fmt.Sprintf("re-encode config: %v", err), ErrBadDocument)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(resolved, cfg); err != nil {
		return nil, NewConfigError("", fmt.Sprintf("decode config: %v", err), ErrBadDocument)
	}
	cfg.tree = tree

	return cfg, nil
}

// applyOverride применяет один override вида "a.b.c=value".
// Ключ обязан присутствовать в документе; значение парсится как
// YAML-скаляр (числа и bool сохраняют тип).
func applyOverride(tree map[string]any, override string) error {
	key, rawValue, found := strings.Cut(override, "=")
	if !found || key == "" {
		return NewConfigError(override, "expected key=value", ErrBadOverride)
	}

	var value any
	if err := yaml.Unmarshal([]byte(rawValue), &value); err != nil {
		value = rawValue
	}

	segments := strings.Split(key, ".")
	node := tree
	for i, segment := range segments {
		existing, ok := node[segment]
		if !ok {
			return NewConfigError(key, "not present in config schema", ErrUnknownKey)
		}
		if i == len(segments)-1 {
			node[segment] = value
			return nil
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return NewConfigError(key, "not present in config schema", ErrUnknownKey)
		}
		node = child
	}
	return nil
}

// lookup находит значение по dotted-path в дереве.
func lookup(tree map[string]any, key string) (any, bool) {
	segments := strings.Split(key, ".")
	node := tree
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		node, ok = value.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Value возвращает скалярное значение по dotted-path,
// приведённое к строке для передачи в параметры шага.
func (c *Config) Value(key string) (string, error) {
	value, ok := lookup(c.tree, key)
	if !ok {
		return "", NewConfigError(key, "required key is missing", ErrMissingKey)
	}
	return FormatScalar(value), nil
}

// Section возвращает копию вложенной секции по dotted-path
// (например, "modeling.random_forest").
func (c *Config) Section(key string) (map[string]any, error) {
	value, ok := lookup(c.tree, key)
	if !ok {
		return nil, NewConfigError(key, "required key is missing", ErrMissingKey)
	}
	section, ok := value.(map[string]any)
	if !ok {
		return nil, NewConfigError(key, "not a section", ErrMissingKey)
	}
	copied := make(map[string]any, len(section))
	for k, v := range section {
		copied[k] = v
	}
	return copied, nil
}

// FormatScalar приводит скалярное значение конфигурации к строке.
// Числа форматируются без экспоненты и без хвостовых нулей.
func FormatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
