// Package flags holds small persisted UI preferences.
package flags

import (
	"context"
	"strconv"

	"github.com/rschubkegel/rschubkegel.com/internal/storage"
)

// LogoPressKey is the storage key of the logo-pressed flag. Anything reading
// the flag must use the same key.
const LogoPressKey = "logo-pressed"

// Dispatcher delivers storage events to listeners of the current document.
type Dispatcher interface {
	Dispatch(storage.Event)
}

// SetLogoPressed stores the flag (true when value is omitted) and notifies
// listeners on target, since a storage area only notifies other documents of
// its own writes. Storage errors are returned as is and suppress the event.
func SetLogoPressed(ctx context.Context, area storage.Area, target Dispatcher, value ...bool) error {
	pressed := true
	if len(value) > 0 {
		pressed = value[0]
	}
	encoded := strconv.FormatBool(pressed)

	if err := area.SetItem(ctx, LogoPressKey, encoded); err != nil {
		return err
	}

	target.Dispatch(storage.Event{
		Key:         LogoPressKey,
		NewValue:    &encoded,
		StorageArea: area,
	})
	return nil
}

// LogoPressed reads the flag back. An absent flag is false.
func LogoPressed(ctx context.Context, area storage.Area) (bool, error) {
	v, ok, err := area.GetItem(ctx, LogoPressKey)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}
