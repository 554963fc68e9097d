// Package passage contains the text-passage domain: the immutable Passage
// value handed to a typing challenge, the Bible book catalog used for random
// selection, the deterministic text cleaner applied to fetched verse text,
// and the curated famous/fallback verse sets that keep passage selection
// working without network access.
package passage
