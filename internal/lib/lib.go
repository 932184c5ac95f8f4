// Package lib holds the integrations that do not belong to a single
// layer: background jobs (asynq), email (resend), the PokeAPI client and
// small helpers.
package lib
