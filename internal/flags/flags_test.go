package flags

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rschubkegel/rschubkegel.com/internal/storage"
)

func record(target *storage.Target) *[]storage.Event {
	var events []storage.Event
	target.AddListener(func(ev storage.Event) { events = append(events, ev) })
	return &events
}

func TestSetLogoPressed(t *testing.T) {
	tests := []struct {
		name  string
		value []bool
		want  string
	}{
		{"default", nil, "true"},
		{"true", []bool{true}, "true"},
		{"false", []bool{false}, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			area := storage.NewMemory(0)
			target := storage.NewTarget()
			events := record(target)

			require.NoError(t, SetLogoPressed(ctx, area, target, tt.value...))

			v, ok, err := area.GetItem(ctx, LogoPressKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)

			require.Len(t, *events, 1)
			ev := (*events)[0]
			assert.Equal(t, LogoPressKey, ev.Key)
			require.NotNil(t, ev.NewValue)
			assert.Equal(t, tt.want, *ev.NewValue)
			assert.Nil(t, ev.OldValue)
			assert.Same(t, area, ev.StorageArea)
		})
	}
}

func TestSetLogoPressed_OneEventPerCall(t *testing.T) {
	ctx := context.Background()
	area := storage.NewMemory(0)
	target := storage.NewTarget()
	events := record(target)

	require.NoError(t, SetLogoPressed(ctx, area, target))
	require.NoError(t, SetLogoPressed(ctx, area, target, false))
	require.NoError(t, SetLogoPressed(ctx, area, target, true))

	require.Len(t, *events, 3)
	var values []string
	for _, ev := range *events {
		values = append(values, *ev.NewValue)
	}
	assert.Equal(t, []string{"true", "false", "true"}, values)

	pressed, err := LogoPressed(ctx, area)
	require.NoError(t, err)
	assert.True(t, pressed)
}

type failingArea struct {
	storage.Area
	err error
}

func (f failingArea) SetItem(context.Context, string, string) error { return f.err }

func TestSetLogoPressed_StorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	target := storage.NewTarget()
	events := record(target)

	boom := errors.New("storage unavailable")
	err := SetLogoPressed(ctx, failingArea{err: boom}, target)
	assert.Same(t, boom, err)
	assert.Empty(t, *events)

	full := storage.NewMemory(5)
	err = SetLogoPressed(ctx, full, target)
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)
	assert.Empty(t, *events)
}

func TestLogoPressed(t *testing.T) {
	ctx := context.Background()
	area := storage.NewMemory(0)

	pressed, err := LogoPressed(ctx, area)
	require.NoError(t, err)
	assert.False(t, pressed)

	require.NoError(t, area.SetItem(ctx, LogoPressKey, "false"))
	pressed, err = LogoPressed(ctx, area)
	require.NoError(t, err)
	assert.False(t, pressed)
}

func TestSetLogoPressed_SQLite(t *testing.T) {
	ctx := context.Background()
	area, err := storage.OpenSQLite(ctx, ":memory:", "http://localhost:4321", storage.DefaultQuota, nil)
	require.NoError(t, err)
	defer area.Close()

	target := storage.NewTarget()
	events := record(target)

	require.NoError(t, SetLogoPressed(ctx, area, target))
	pressed, err := LogoPressed(ctx, area)
	require.NoError(t, err)
	assert.True(t, pressed)
	require.Len(t, *events, 1)
	assert.Equal(t, "true", *(*events)[0].NewValue)
}
