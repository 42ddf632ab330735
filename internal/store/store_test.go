package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoad_EmptyStoreReturnsInitialState(t *testing.T) {
	st := openTestStore(t)

	state, found := st.Load()
	assert.False(t, found)
	assert.Equal(t, model.InitialState(), state)
	assert.True(t, st.UpdatedAt().IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := openTestStore(t)

	eng := engine.New(model.InitialState())
	eng.UpdateClient(engine.ClientCompanyName, "ACME Ltda")
	eng.ToggleAgentType(model.AgentSDR)
	eng.ToggleAgentType(model.AgentPersonalizado)
	eng.SetCustomAgentType("agente de cobrança")
	eng.UpdateQuantity(true)
	eng.SetPaymentCondition(model.ConditionAvista)
	eng.ToggleFeature(model.FeatureWhatsapp)
	eng.AddCustomResource("chatbot para Instagram")
	eng.ApplyCoupon("GAND10")
	eng.UpdateObservations("entrega em duas fases")
	saved := eng.State()

	require.NoError(t, st.Save(saved))

	loaded, found := st.Load()
	require.True(t, found)
	assert.Equal(t, saved, loaded)

	// A reloaded draft prices exactly like the live one.
	assert.Equal(t, engine.Derive(saved), engine.Derive(loaded))
	assert.False(t, st.UpdatedAt().IsZero())
}

func TestSave_OverwritesPreviousDraft(t *testing.T) {
	st := openTestStore(t)

	first := model.InitialState()
	first.Client.CompanyName = "Primeira"
	require.NoError(t, st.Save(first))

	second := model.InitialState()
	second.Client.CompanyName = "Segunda"
	require.NoError(t, st.Save(second))

	loaded, found := st.Load()
	require.True(t, found)
	assert.Equal(t, "Segunda", loaded.Client.CompanyName)
}

func TestLoad_CorruptPayloadFallsBackToInitialState(t *testing.T) {
	st := openTestStore(t)

	_, err := st.db.Exec(`INSERT OR REPLACE INTO drafts (key, payload, updated_at)
		VALUES (?, ?, ?)`, draftKey, "{not json", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	state, found := st.Load()
	assert.False(t, found)
	assert.Equal(t, model.InitialState(), state)
}

func TestClear_RemovesDraft(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Save(model.InitialState()))
	require.NoError(t, st.Clear())

	_, found := st.Load()
	assert.False(t, found)
}

func TestOpen_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "drafts.db")
	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(model.InitialState()))
}

func TestSaver_FlushesLatestSnapshotOnClose(t *testing.T) {
	st := openTestStore(t)
	saver := NewSaver(st)

	eng := engine.New(model.InitialState(), saver.Observe)
	eng.UpdateClient(engine.ClientCompanyName, "ACME")
	eng.SetImplementationValue(7000)
	eng.UpdateObservations("última versão")
	final := eng.State()

	saver.Close()

	loaded, found := st.Load()
	require.True(t, found)
	assert.Equal(t, final, loaded)
}
