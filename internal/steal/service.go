package steal

import (
	"context"
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/domain"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/repository"
)

// Service defines the steal system business logic
type Service interface {
	// Steal attempts to take one unsold fruit from targetKey
	Steal(ctx context.Context, actorKey, targetKey string) (*domain.StealResult, error)
}

type service struct {
	accounts    *account.Manager
	inventory   repository.InventoryRepository
	cooldowns   cooldown.Service
	adjudicator *Adjudicator
	publisher   event.Publisher
}

// NewService creates a new steal service
func NewService(
	accounts *account.Manager,
	inventory repository.InventoryRepository,
	cooldowns cooldown.Service,
	adjudicator *Adjudicator,
	publisher event.Publisher,
) Service {
	return &service{
		accounts:    accounts,
		inventory:   inventory,
		cooldowns:   cooldowns,
		adjudicator: adjudicator,
		publisher:   publisher,
	}
}

// Steal validates every precondition before rolling. Both accounts are
// locked in key order and saved in one transaction with the fruit transfer.
func (s *service) Steal(ctx context.Context, actorKey, targetKey string) (*domain.StealResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStealCalled, "actor", actorKey, "target", targetKey)

	if actorKey == targetKey {
		return nil, domain.ErrSelfSteal
	}

	var result *domain.StealResult
	_, _, err := s.accounts.UpdatePair(ctx, actorKey, targetKey, func(tx repository.AccountTx, actor, target *domain.Account) error {
		now := s.accounts.Now()
		if err := s.cooldowns.Check(domain.ActionSteal, actor.LastStealAt, now); err != nil {
			return err
		}

		fruits, err := s.inventory.GetUnsoldFruits(ctx, target.Key)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInfrastructure, ErrMsgLoadInventoryFailed, err)
		}

		outcome, err := s.adjudicator.Attempt(actor, target, fruits, now)
		if err != nil {
			return err
		}
		if outcome.Success {
			if err := tx.TransferFruit(ctx, outcome.Fruit.ID, target.Key, actor.Key); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgTransferFailed, err)
			}
		}

		result = &domain.StealResult{
			Success:     outcome.Success,
			Chance:      outcome.Chance,
			Fruit:       outcome.Fruit,
			TargetKey:   target.Key,
			NextStealAt: now.Add(s.cooldowns.Duration(domain.ActionSteal)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		log.Info(LogMsgStealSucceeded, "actor", actorKey, "target", targetKey, "fruit", result.Fruit.ID, "chance", result.Chance)
	} else {
		log.Info(LogMsgStealFailed, "actor", actorKey, "target", targetKey, "chance", result.Chance)
	}
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewStealAttemptedEvent(actorKey, result))
	}
	return result, nil
}
