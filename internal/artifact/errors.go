package artifact

import "errors"

// Ошибки разрешения артефактов.
var (
	// ErrArtifactNotFound — артефакт с таким именем/квалификатором не существует
	// ни в записи текущего run, ни в глобальной системе трекинга.
	// Ненайденная метка и never-produced артефакт намеренно не различаются:
	// сообщение несёт квалификатор, этого достаточно для диагностики.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrBadQualifier — явный токен версии не парсится (не "vN").
	ErrBadQualifier = errors.New("malformed version qualifier")
)
