package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/grandcafe/venueops/internal/config"
	"github.com/grandcafe/venueops/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *db.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
