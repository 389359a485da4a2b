package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/opsdesk/reten-ops/internal/config"
	"github.com/opsdesk/reten-ops/pkg/clients/gmailclient"
	"github.com/opsdesk/reten-ops/pkg/clients/sheetsclient"
	"github.com/opsdesk/reten-ops/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client
	GmailClient  *gmailclient.Client
	Database     db.Database
	Logger       *zap.Logger
	Ctx          context.Context
}
