package fieldrule

// Stage names a point in an entity's persistence lifecycle. Values are opaque
// keys matched by the validation engine; only the constants below carry
// meaning inside this module.
type Stage string

const (
	// StageSave runs immediately before any persist, new or existing.
	StageSave Stage = "save"
	// StageCreate runs before the first persist of a new entity.
	StageCreate Stage = "create"
	// StageUpdate runs before persisting an already stored entity.
	StageUpdate Stage = "update"
)

// DefaultStage is used when a rule does not name a stage.
const DefaultStage = StageSave

func (s Stage) String() string {
	return string(s)
}
