package models

import (
	"github.com/cleansweep/cleansweep/internal/cleaner"
	"github.com/cleansweep/cleansweep/internal/config"
	"github.com/cleansweep/cleansweep/internal/platform"
	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
)

// Services bundles the core operations the TUI drives. Everything is
// injected; views never construct their own state.
type Services struct {
	Settings   *config.Settings
	Info       *platform.Info
	Engine     *scanner.Engine
	Classifier *safety.Classifier
	Analyzer   *quickclean.Analyzer
	Gate       *cleaner.Gate
	Executor   *cleaner.Executor
}
