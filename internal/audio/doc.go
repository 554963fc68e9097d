// Package audio abstracts the sound and vibration side effects of a ringing
// alarm, plus the keep-warm session that holds the playback channel open
// while any alarm is enabled.
//
// The lifecycle service talks only to the Player and KeepWarm interfaces;
// the logging implementations here stand in for a platform audio backend.
package audio
