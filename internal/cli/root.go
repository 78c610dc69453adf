package cli

import (
	"fmt"

	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// ResolveDay normalizes a --date flag value: empty means today, anything
// else must be a valid YYYY-MM-DD calendar day.
func ResolveDay(flag string) (string, error) {
	if flag == "" {
		return dateutil.Today(), nil
	}
	if !dateutil.Valid(flag) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", flag)
	}
	return flag, nil
}
