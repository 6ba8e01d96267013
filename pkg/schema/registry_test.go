package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/fieldrule"
	"github.com/dmitrymomot/fieldrules/pkg/schema"
)

func accountEntity() schema.Entity {
	return schema.NewEntity("account",
		schema.StringField("status", fieldrule.MustNew([]string{"ACTIVE", "INACTIVE"})),
		schema.StringField("plan",
			fieldrule.MustNew([]string{"free", "pro"}, fieldrule.WithStage(fieldrule.StageCreate)),
			fieldrule.MustNew([]string{"pro", "enterprise"}, fieldrule.WithStage(fieldrule.StageUpdate)),
		),
	)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("registers and looks up entity", func(t *testing.T) {
		reg := schema.NewRegistry()
		require.NoError(t, reg.Register(accountEntity()))

		e, ok := reg.Lookup("account")
		require.True(t, ok)
		assert.Equal(t, "account", e.Name)
		assert.Len(t, e.Fields, 2)

		_, ok = reg.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("rejects duplicate entity", func(t *testing.T) {
		reg := schema.NewRegistry()
		require.NoError(t, reg.Register(accountEntity()))

		err := reg.Register(accountEntity())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrDuplicateEntity)
	})

	t.Run("rejects empty entity name", func(t *testing.T) {
		err := schema.NewRegistry().Register(schema.NewEntity(""))
		assert.ErrorIs(t, err, schema.ErrEmptyEntityName)
	})

	t.Run("rejects malformed fields", func(t *testing.T) {
		e := schema.NewEntity("account",
			schema.StringField(""),
			schema.StringField("status", nil),
			schema.StringField("plan"),
			schema.StringField("plan"),
		)

		err := schema.NewRegistry().Register(e)
		require.Error(t, err)
		assert.True(t, fieldrule.IsDeclarationError(err))
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
		assert.ErrorIs(t, err, schema.ErrNilRule)
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("registration is all or nothing", func(t *testing.T) {
		reg := schema.NewRegistry()
		err := reg.RegisterAll(accountEntity(), schema.NewEntity(""))
		require.Error(t, err)
		assert.Empty(t, reg.Entities())
	})

	t.Run("rejects duplicates inside one batch", func(t *testing.T) {
		reg := schema.NewRegistry()
		err := reg.RegisterAll(accountEntity(), accountEntity())
		assert.ErrorIs(t, err, schema.ErrDuplicateEntity)
		assert.Empty(t, reg.Entities())
	})

	t.Run("stored entity is isolated from caller", func(t *testing.T) {
		reg := schema.NewRegistry()
		e := accountEntity()
		require.NoError(t, reg.Register(e))

		e.Fields[0].Name = "changed"

		stored, ok := reg.Lookup("account")
		require.True(t, ok)
		_, ok = stored.Field("status")
		assert.True(t, ok)
	})

	t.Run("looked up entity is isolated from registry", func(t *testing.T) {
		reg := schema.NewRegistry()
		require.NoError(t, reg.Register(accountEntity()))

		first, ok := reg.Lookup("account")
		require.True(t, ok)
		first.Fields[0].Name = "changed"
		first.Fields[0].Rules = nil

		again, ok := reg.Lookup("account")
		require.True(t, ok)
		f, ok := again.Field("status")
		require.True(t, ok)
		assert.Len(t, f.Rules, len(accountEntity().Fields[0].Rules))
	})
}

func TestRegistry_MustRegister(t *testing.T) {
	reg := schema.NewRegistry()
	assert.NotPanics(t, func() { reg.MustRegister(accountEntity()) })
	assert.Panics(t, func() { reg.MustRegister(accountEntity()) })
}

func TestRegistry_Entities(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, reg.RegisterAll(
		schema.NewEntity("invoice"),
		accountEntity(),
	))
	assert.Equal(t, []string{"account", "invoice"}, reg.Entities())
}

func TestDefaultRegistry(t *testing.T) {
	e := schema.NewEntity("default_registry_test_entity",
		schema.StringField("kind", fieldrule.MustNew([]string{"a"})),
	)
	require.NoError(t, schema.Register(e))

	_, ok := schema.Default().Lookup(e.Name)
	assert.True(t, ok)
	assert.Panics(t, func() { schema.MustRegister(e) })
}

func TestEntity_RulesAt(t *testing.T) {
	e := accountEntity()

	save := e.RulesAt(fieldrule.StageSave)
	require.Len(t, save, 1)
	assert.Equal(t, "status", save[0].Field)

	create := e.RulesAt(fieldrule.StageCreate)
	require.Len(t, create, 1)
	assert.Equal(t, "plan", create[0].Field)
	assert.Equal(t, []string{"free", "pro"}, create[0].Rule.AllowedValues())

	assert.Empty(t, e.RulesAt("publish"))

	assert.Equal(t, []fieldrule.Stage{fieldrule.StageSave, fieldrule.StageCreate, fieldrule.StageUpdate}, e.Stages())
}
