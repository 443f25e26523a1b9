package domain

import (
	"fmt"
	"strings"
	"time"
)

// Квалификаторы версий артефактов.
const (
	// QualifierLatest — последняя произведённая версия артефакта.
	QualifierLatest = "latest"

	// QualifierReference — метка эталонного датасета (для сравнения распределений).
	QualifierReference = "reference"

	// QualifierProd — метка модели, находящейся в production.
	QualifierProd = "prod"
)

// ArtifactRef — ссылка на артефакт: логическое имя + квалификатор версии.
//
// Квалификатор — либо "latest", либо именованная метка ("reference", "prod"),
// либо явный токен версии ("v3"). Ссылка разрешается в ArtifactHandle
// через artifact.Resolver.
type ArtifactRef struct {
	// Name — логическое имя артефакта (например, "clean_sample.csv").
	Name string `json:"name"`

	// Qualifier — селектор версии. Пустой квалификатор означает "latest".
	Qualifier string `json:"qualifier"`
}

// ParseArtifactRef парсит строку вида "name:qualifier".
// Для строки без квалификатора подставляется "latest".
func ParseArtifactRef(s string) ArtifactRef {
	name, qualifier, found := strings.Cut(s, ":")
	if !found || qualifier == "" {
		qualifier = QualifierLatest
	}
	return ArtifactRef{Name: name, Qualifier: qualifier}
}

// String возвращает ссылку в виде "name:qualifier".
func (r ArtifactRef) String() string {
	qualifier := r.Qualifier
	if qualifier == "" {
		qualifier = QualifierLatest
	}
	return r.Name + ":" + qualifier
}

// ArtifactHandle — неизменяемый указатель на конкретную версию артефакта.
//
// Handle создаётся системой трекинга при регистрации артефакта и
// передаётся шагам как входной параметр. Содержимое артефакта хранится
// во внешнем хранилище и не интересует оркестратор.
type ArtifactHandle struct {
	// Name — логическое имя артефакта.
	Name string `json:"name"`

	// Version — порядковый номер версии (1, 2, 3, ...).
	Version int `json:"version"`

	// URI — адрес содержимого во внешнем хранилище (опционально).
	URI string `json:"uri,omitempty"`

	// CreatedAt — время регистрации версии.
	CreatedAt time.Time `json:"created_at"`
}

// Ref возвращает точную ссылку на эту версию в виде "name:vN".
// Такая строка передаётся шагу и всегда разрешается в тот же handle.
func (h ArtifactHandle) Ref() string {
	return fmt.Sprintf("%s:v%d", h.Name, h.Version)
}
