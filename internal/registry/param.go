package registry

import "github.com/shaiso/Conveyor/internal/domain"

// ParamKind — вид источника значения параметра.
type ParamKind string

const (
	// ParamLiteral — литеральное значение, подставляется как есть.
	ParamLiteral ParamKind = "literal"

	// ParamConfig — значение читается из снимка конфигурации по dotted-path.
	ParamConfig ParamKind = "config"

	// ParamArtifact — ссылка на артефакт, разрешается в точную версию.
	ParamArtifact ParamKind = "artifact"

	// ParamParamsFile — секция конфигурации, материализуемая в workspace
	// как JSON-документ; параметром передаётся путь к файлу.
	ParamParamsFile ParamKind = "params_file"
)

// Param — шаблон одного параметра шага.
//
// Ровно одно из полей-значений заполнено, в соответствии с Kind.
type Param struct {
	// Kind — вид источника значения.
	Kind ParamKind

	// Value — литерал (Kind == ParamLiteral).
	Value string

	// ConfigKey — dotted-path ключа конфигурации (Kind == ParamConfig).
	ConfigKey string

	// Artifact — ссылка на артефакт (Kind == ParamArtifact).
	Artifact domain.ArtifactRef

	// Section — dotted-path секции конфигурации (Kind == ParamParamsFile).
	Section string
}

// Literal создаёт литеральный параметр.
func Literal(value string) Param {
	return Param{Kind: ParamLiteral, Value: value}
}

// FromConfig создаёт параметр-ссылку на ключ конфигурации.
func FromConfig(key string) Param {
	return Param{Kind: ParamConfig, ConfigKey: key}
}

// FromArtifact создаёт параметр-ссылку на артефакт.
func FromArtifact(name, qualifier string) Param {
	return Param{Kind: ParamArtifact, Artifact: domain.ArtifactRef{Name: name, Qualifier: qualifier}}
}

// ParamsFile создаёт параметр-документ из секции конфигурации.
func ParamsFile(section string) Param {
	return Param{Kind: ParamParamsFile, Section: section}
}
