package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	st := NewStore(staticEngine("[]", nil))

	a := st.Create()
	b := st.Create()
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, 2, st.Len())

	got, err := st.Get(a.ID)
	require.NoError(t, err)
	require.Same(t, a, got)

	require.NoError(t, st.Delete(a.ID))
	_, err = st.Get(a.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, st.Delete(a.ID), ErrNotFound)
	require.Equal(t, 1, st.Len())
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	st := NewStore(staticEngine(onePayload, nil))
	a := st.Create()
	b := st.Create()

	a.ObserveKey(1)
	_, err := a.Confirm()
	require.NoError(t, err)

	require.Equal(t, 0, b.Snapshot().Length)
	require.Empty(t, b.Sections())

	_, err = b.Confirm()
	require.NoError(t, err)
	require.Equal(t, "addr_0", b.Sections()[0].Target)
}
