// Package settings implements persistence for the passage-selection settings.
//
// The singleton Settings record controls where typing-challenge passages come
// from. The derived VerseSource field is recomputed from the famous-mode flag
// and the selected book set on every write, never trusted from disk.
package settings
