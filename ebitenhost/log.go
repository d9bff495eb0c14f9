package ebitenhost

import (
	"log/slog"

	"github.com/phanxgames/nativeshell/internal/logging"
)

func logger() *slog.Logger { return logging.Logger() }
