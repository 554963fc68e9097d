// Package passage selects the text challenge for a ringing episode.
//
// The provider walks a fallback chain: curated famous verses when the user
// asked for them, otherwise random verse sampling against the remote
// scripture API with a bounded retry, then preset references, and finally a
// hardcoded local set. The chain guarantees a usable passage comes back no
// matter how the network or settings store behaves.
package passage
