package model

// Package model defines domain data structures shared across the engine:
// download requests and mode variants, resolved media metadata, progress
// events, and updater status types. Values are passed by copy across the
// host boundary; nothing here holds shared mutable state.
