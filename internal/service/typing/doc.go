// Package typing implements the verification gate of a ringing episode:
// a session that accepts or rejects each keystroke of the user's retyped
// passage and signals completion when the whole text matches.
package typing
