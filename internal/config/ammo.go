package config

import (
	"log/slog"

	"github.com/star/slingshot/internal/ammo"
)

// AmmoTable returns the custom table named by SLINGSHOT_AMMO_TABLE, or the
// built-in table when none is set or the file cannot be used.
func (c Config) AmmoTable(logger *slog.Logger) *ammo.Table {
	if c.AmmoTablePath == "" {
		return ammo.DefaultTable()
	}

	t, err := ammo.LoadTOML(c.AmmoTablePath)
	if err != nil {
		logger.Warn("invalid ammo table, using built-in table", "path", c.AmmoTablePath, "error", err)
		return ammo.DefaultTable()
	}

	logger.Info("loaded ammo table", "path", c.AmmoTablePath, "count", t.Len(), "default", t.Default().Name)
	return t
}
