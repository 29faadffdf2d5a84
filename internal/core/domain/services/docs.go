// Package services contains domain services for the order workflow: the
// transition table shared by the workflow machine and the authorizer, the
// Workflow service that decides edges and auto-advance steps, and the
// Authorizer that computes the set of actions a user may invoke.
//
// The transition table is the single source of truth for edge legality and
// role gating. The Authorizer's AvailableActions is the single function both
// the presentation layer and the enforcement path use, so what a user is
// shown and what a user may actually do can never drift apart.
package services
