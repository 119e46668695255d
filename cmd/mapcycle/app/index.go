package app

import (
	"github.com/srcdskit/mapcycle/internal/workshop"
	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

// installedIndex builds the installed-content index for a mapcycle file.
// The workshop directory is taken from the command flag, then the
// configuration, then autodetection relative to the mapcycle path. A nil
// return means no index is available, which downstream queries treat as
// "nothing downloaded" rather than an error.
func (a *App) installedIndex(mapcyclePath, override string) mapcycle.Index {
	dir := override
	if dir == "" {
		dir = a.config.WorkshopDir
	}
	if dir == "" {
		dir = workshop.DetectDir(mapcyclePath)
		if dir != "" {
			a.logger.Info().Str("dir", dir).Msg("Using autodetected workshop directory")
		}
	}
	if dir == "" {
		return nil
	}

	index, err := workshop.BuildIndex(dir)
	if err != nil {
		a.logger.Warn().Err(err).Str("dir", dir).Msg("Could not index installed workshop content")
		return nil
	}
	return index
}
