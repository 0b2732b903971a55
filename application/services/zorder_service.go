// Package services hosts application services that orchestrate commands
// through the history manager: stacking-order operations with their
// deferred normalization pass, and the clipboard.
package services

import (
	"time"

	"github.com/bep/debounce"
	"go.uber.org/zap"

	"flowedit/application/commands"
	"flowedit/application/history"
	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	"flowedit/domain/zorder"
)

// ZOrderService runs stacking-order commands and schedules the cosmetic
// z-index normalization that follows a burst of reorders. Normalization
// is debounced so a run of rapid reorders triggers a single rewrite,
// and it bypasses the history stacks entirely.
type ZOrderService struct {
	manager   *history.Manager
	debounced func(func())
	logger    *zap.Logger
}

// NewZOrderService creates the service using default configuration
func NewZOrderService(manager *history.Manager, logger *zap.Logger) *ZOrderService {
	return NewZOrderServiceWithConfig(manager, config.DefaultDomainConfig(), logger)
}

// NewZOrderServiceWithConfig creates the service with configuration
func NewZOrderServiceWithConfig(manager *history.Manager, cfg *config.DomainConfig, logger *zap.Logger) *ZOrderService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	wait := cfg.NormalizeDebounce
	if wait <= 0 {
		wait = 50 * time.Millisecond
	}

	return &ZOrderService{
		manager:   manager,
		debounced: debounce.New(wait),
		logger:    logger,
	}
}

// BringToFront stacks the nodes above everything else
func (s *ZOrderService) BringToFront(ids []valueobjects.EntityID) (aggregates.Document, error) {
	return s.reorder(ids, commands.BringToFront)
}

// SendToBack stacks the nodes below everything else
func (s *ZOrderService) SendToBack(ids []valueobjects.EntityID) (aggregates.Document, error) {
	return s.reorder(ids, commands.SendToBack)
}

// BringForward moves the nodes up by one rank
func (s *ZOrderService) BringForward(ids []valueobjects.EntityID) (aggregates.Document, error) {
	return s.reorder(ids, commands.BringForward)
}

// SendBackward moves the nodes down by one rank
func (s *ZOrderService) SendBackward(ids []valueobjects.EntityID) (aggregates.Document, error) {
	return s.reorder(ids, commands.SendBackward)
}

func (s *ZOrderService) reorder(ids []valueobjects.EntityID, direction commands.ReorderDirection) (aggregates.Document, error) {
	cmd, err := commands.NewReorderNodesCommand(ids, direction)
	if err != nil {
		return aggregates.Document{}, err
	}

	doc, outcome := s.manager.ExecuteCommand(cmd)
	if outcome != commands.OutcomeSkipped {
		s.debounced(s.normalize)
	}
	return doc, nil
}

// Flush runs any pending normalization immediately, for quiescence
// points like saving. The pending debounced call is replaced with a
// no-op so it cannot fire a second rewrite later.
func (s *ZOrderService) Flush() {
	s.debounced(func() {})
	s.normalize()
}

func (s *ZOrderService) normalize() {
	s.manager.UpdateDocument(zorder.Normalize)
	s.logger.Debug("z-indexes normalized")
}
