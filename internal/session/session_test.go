package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
	"github.com/AlexZinkM/paper-wallet/internal/entropy"
	"github.com/AlexZinkM/paper-wallet/internal/trigger"
)

const onePayload = `[{"address":"addr1","private_key":"pk1","seed":{"HDSeed":"seed1","path":"m/0"}}]`

func staticEngine(payload string, calls *[]string) engine.Engine {
	return engine.Func(func(entropy string) (string, error) {
		if calls != nil {
			*calls = append(*calls, entropy)
		}
		return payload, nil
	})
}

func TestNewSessionShowsDialog(t *testing.T) {
	s := New("id", staticEngine(onePayload, nil))
	snap := s.Snapshot()
	require.True(t, snap.DialogVisible)
	require.Equal(t, 0.0, snap.Progress)
	require.Equal(t, entropy.StateCollecting, snap.State)
	require.Equal(t, entropy.StyleWarning, snap.TriggerStyle)
}

func TestSessionFullFlow(t *testing.T) {
	var calls []string
	s := New("id", staticEngine(onePayload, &calls))

	for i := 0; i < 64; i++ {
		s.ObserveKey(3)
	}
	snap := s.Snapshot()
	require.Equal(t, 100.0, snap.Progress)
	require.Equal(t, entropy.StateReady, snap.State)
	require.Equal(t, entropy.StyleSuccess, snap.TriggerStyle)
	require.True(t, snap.IndicatorSuccess)

	res, err := s.Confirm()
	require.NoError(t, err)
	require.Equal(t, 1, res.Rendered)
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 64)

	sections := s.Sections()
	require.Len(t, sections, 2)
	require.NotNil(t, s.Code("addr_0"))
	require.NotNil(t, s.Code("pk_0"))
	require.False(t, s.Snapshot().DialogVisible)
}

func TestSessionEscapeDoesNotGenerate(t *testing.T) {
	var calls []string
	s := New("id", staticEngine(onePayload, &calls))

	res, err := s.Dismiss(trigger.ReasonEscape)
	require.NoError(t, err)
	require.Nil(t, res)
	require.Empty(t, calls)
	require.True(t, s.Snapshot().DialogVisible)
}

func TestSessionRepeatAndClear(t *testing.T) {
	s := New("id", staticEngine(onePayload, nil))

	_, err := s.Confirm()
	require.NoError(t, err)
	s.Show()
	_, err = s.Confirm()
	require.NoError(t, err)
	require.Len(t, s.Sections(), 4)

	s.Clear()
	require.Empty(t, s.Sections())

	s.Show()
	res, err := s.Confirm()
	require.NoError(t, err)
	require.Equal(t, 2, res.FirstID)
	require.Equal(t, "addr_2", s.Sections()[0].Target)
}

func TestSessionMalformedPayload(t *testing.T) {
	s := New("id", staticEngine(`{"oops":true}`, nil))

	_, err := s.Confirm()
	require.True(t, engine.IsPayloadError(err))
	require.Empty(t, s.Sections())
}

func TestSessionConcurrentEventsAreSerialised(t *testing.T) {
	s := New("id", staticEngine(onePayload, nil))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ObserveKey(1)
			s.ObservePointer(1, 2)
		}()
	}
	wg.Wait()

	// 50 key digits plus one pointer digit for every 5th of 50 pointer events
	require.Equal(t, 60, s.Snapshot().Length)
}
