// Package errors provides coded errors for the dungeon map session layer.
//
// The hex and dungeonmap packages never return errors; everything that can
// fail (repositories, the session orchestrator, the encounter client) uses
// this package so callers can branch on a code instead of a message.
//
// Creating errors:
//
//	err := errors.NotFound("dungeon map session not found")
//	err := errors.InvalidArgumentf("movement must not be negative: %d", feet)
//
// Adding metadata:
//
//	err := errors.NotFound("entity not on map").
//	    WithMeta("session_id", sessionID).
//	    WithMeta("entity_id", entityID)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save dungeon map")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // start a fresh session
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// Responses from rpg-api arrive as gRPC status errors; FromGRPCError maps
// them onto these codes.
package errors
