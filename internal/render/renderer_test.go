package render_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/paper-wallet/internal/model"
	"github.com/AlexZinkM/paper-wallet/internal/render"
	"github.com/AlexZinkM/paper-wallet/internal/render/rendertest"
)

func walletSet(n int) model.WalletSet {
	set := make(model.WalletSet, n)
	for i := range set {
		set[i] = model.WalletRecord{
			Address:    fmt.Sprintf("addr%d", i+1),
			PrivateKey: fmt.Sprintf("pk%d", i+1),
			Seed:       model.Seed{HDSeed: fmt.Sprintf("seed%d", i+1), Path: fmt.Sprintf("m/%d", i)},
		}
	}
	return set
}

func TestRenderSingleRecord(t *testing.T) {
	rec := &rendertest.Recorder{}
	r := render.NewWalletRenderer(rec)

	n, err := r.Render(model.WalletSet{{
		Address:    "addr1",
		PrivateKey: "pk1",
		Seed:       model.Seed{HDSeed: "seed1", Path: "m/0"},
	}})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Len(t, rec.Sections, 2)
	require.Equal(t, render.KindAddress, rec.Sections[0].Kind)
	require.Equal(t, "addr_0", rec.Sections[0].Target)
	require.Equal(t, "addr1", rec.Sections[0].Address)

	pk := rec.Sections[1]
	require.Equal(t, render.KindPrivateKey, pk.Kind)
	require.Equal(t, "pk_0", pk.Target)
	require.Equal(t, "pk1", pk.PrivateKey)
	require.Equal(t, "addr1", pk.Address)
	require.Equal(t, model.Seed{HDSeed: "seed1", Path: "m/0"}, pk.Seed)

	require.Equal(t, []rendertest.Draw{
		{Target: "addr_0", Payload: "addr1", Scale: 5.5},
		{Target: "pk_0", Payload: "pk1", Scale: 3.5},
	}, rec.Draws)
}

func TestRenderAssignsSequentialIDs(t *testing.T) {
	rec := &rendertest.Recorder{}
	r := render.NewWalletRenderer(rec)

	_, err := r.Render(walletSet(3))
	require.NoError(t, err)
	require.Equal(t, []string{"addr_0", "pk_0", "addr_1", "pk_1", "addr_2", "pk_2"}, rec.Targets())
	require.Equal(t, 3, r.Next())
}

func TestRenderTwiceDuplicates(t *testing.T) {
	rec := &rendertest.Recorder{}
	r := render.NewWalletRenderer(rec)
	set := walletSet(2)

	_, err := r.Render(set)
	require.NoError(t, err)
	_, err = r.Render(set)
	require.NoError(t, err)

	require.Len(t, rec.Draws, 8)
	require.Len(t, rec.Sections, 8)
	require.Equal(t, []string{
		"addr_0", "pk_0", "addr_1", "pk_1",
		"addr_2", "pk_2", "addr_3", "pk_3",
	}, rec.Targets())
	require.Equal(t, "addr1", rec.Draws[4].Payload)
}

func TestRenderEmptySet(t *testing.T) {
	rec := &rendertest.Recorder{}
	r := render.NewWalletRenderer(rec)

	n, err := r.Render(nil)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, rec.Sections)
	require.Empty(t, rec.Draws)
	require.Zero(t, r.Next())
}

func TestRenderDrawError(t *testing.T) {
	boom := errors.New("boom")
	rec := &rendertest.Recorder{DrawErr: boom}
	r := render.NewWalletRenderer(rec)

	n, err := r.Render(walletSet(2))
	require.ErrorIs(t, err, boom)
	require.Zero(t, n)
	require.Len(t, rec.Sections, 1)
	require.Equal(t, 1, r.Next())
}

func TestRenderLabels(t *testing.T) {
	rec := &rendertest.Recorder{}
	r := render.NewWalletRenderer(rec)

	_, err := r.Render(model.WalletSet{
		{Type: "solana", Address: "a", PrivateKey: "p"},
		{Type: "bitcoin", Address: "b", PrivateKey: "q"},
		{Address: "c", PrivateKey: "r"},
	})
	require.NoError(t, err)
	require.Equal(t, "Address (Solana)", rec.Sections[0].Label)
	require.Equal(t, "Address (Bitcoin)", rec.Sections[2].Label)
	require.Equal(t, "Address", rec.Sections[4].Label)
	require.Equal(t, "Private Key", rec.Sections[5].Label)
}
