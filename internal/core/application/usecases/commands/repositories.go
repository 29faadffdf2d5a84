// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// HistoryStoreFactory provides access to the history store within a transaction.
	HistoryStoreFactory interface {
		HistoryStore() ports.HistoryStore
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReservationUoW manages transactions for reservation-only operations.
	ReservationUoW interface {
		TxManager
		ReservationRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// WorkflowUoW manages transactions spanning an order and its history.
	// A status transition and its history entry commit together or not at all.
	WorkflowUoW interface {
		TxManager
		OrderRepoFactory
		HistoryStoreFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// ConfirmUoW manages transactions spanning a reservation and its order.
	// Confirming a number updates both aggregates atomically.
	ConfirmUoW interface {
		TxManager
		ReservationRepoFactory
		OrderRepoFactory
	}

	// ConfirmUoWFactory creates new confirm unit of work instances.
	ConfirmUoWFactory interface {
		Create() ConfirmUoW
	}
)
