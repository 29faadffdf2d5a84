package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrSweepReservationsCommandIsNotConstructed = errors.New(
	"SweepReservationsCommand must be created via NewSweepReservationsCommand constructor")

// SweepReservationsCommand releases unconfirmed reservations older than TTL.
type SweepReservationsCommand struct {
	ttl time.Duration

	guard kernel.ConstructorGuard
}

func NewSweepReservationsCommand(ttl time.Duration) (SweepReservationsCommand, error) {
	var cmd SweepReservationsCommand

	err := cmd.setTTL(ttl)
	if err != nil {
		return SweepReservationsCommand{}, err
	}

	cmd.guard = kernel.NewConstructorGuard()
	return cmd, nil
}

func (cmd *SweepReservationsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsRequiredError("ttl")
	}
	cmd.ttl = ttl
	return nil
}

func (cmd SweepReservationsCommand) TTL() time.Duration {
	return cmd.ttl
}

func (cmd SweepReservationsCommand) Validate() error {
	return cmd.guard.Validate(ErrSweepReservationsCommandIsNotConstructed)
}
