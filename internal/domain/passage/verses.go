package passage

// VerseRef addresses a verse range inside a book for a remote fetch.
type VerseRef struct {
	// BookCode is the USFM book identifier.
	BookCode string
	// Chapter is the 1-based chapter number.
	Chapter int
	// Verse is the 1-based starting verse.
	Verse int
	// Count is the number of consecutive verses, at least 1.
	Count int
}

// famousVerses is the curated set served in famous mode. Local only, never
// requires network access.
var famousVerses = []Passage{
	New("famous_0", "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.", "John 3:16"),
	New("famous_1", "I can do all things through Christ which strengtheneth me.", "Philippians 4:13"),
	New("famous_2", "Trust in the LORD with all thine heart; and lean not unto thine own understanding.", "Proverbs 3:5"),
	New("famous_3", "The LORD is my shepherd; I shall not want.", "Psalm 23:1"),
	New("famous_4", "For I know the thoughts that I think toward you, saith the LORD, thoughts of peace, and not of evil, to give you an expected end.", "Jeremiah 29:11"),
	New("famous_5", "And we know that all things work together for good to them that love God, to them who are the called according to his purpose.", "Romans 8:28"),
	New("famous_6", "But they that wait upon the LORD shall renew their strength; they shall mount up with wings as eagles; they shall run, and not be weary; and they shall walk, and not faint.", "Isaiah 40:31"),
	New("famous_7", "But seek ye first the kingdom of God, and his righteousness; and all these things shall be added unto you.", "Matthew 6:33"),
	New("famous_8", "Be strong and of a good courage; be not afraid, neither be thou dismayed: for the LORD thy God is with thee whithersoever thou goest.", "Joshua 1:9"),
	New("famous_9", "Be still, and know that I am God: I will be exalted among the heathen, I will be exalted in the earth.", "Psalm 46:10"),
}

// presetRefs lists well-known passages tried when random selection keeps
// failing. These still require one remote fetch each.
var presetRefs = []VerseRef{
	{BookCode: "PSA", Chapter: 46, Verse: 10, Count: 1},
	{BookCode: "PSA", Chapter: 118, Verse: 24, Count: 1},
	{BookCode: "JHN", Chapter: 3, Verse: 16, Count: 1},
	{BookCode: "PHP", Chapter: 4, Verse: 13, Count: 1},
	{BookCode: "PRO", Chapter: 3, Verse: 5, Count: 1},
	{BookCode: "JER", Chapter: 29, Verse: 11, Count: 1},
	{BookCode: "PSA", Chapter: 23, Verse: 1, Count: 1},
	{BookCode: "ROM", Chapter: 8, Verse: 28, Count: 1},
	{BookCode: "ISA", Chapter: 40, Verse: 31, Count: 1},
	{BookCode: "MAT", Chapter: 6, Verse: 33, Count: 1},
	{BookCode: "PRO", Chapter: 3, Verse: 5, Count: 2},
	{BookCode: "PSA", Chapter: 23, Verse: 1, Count: 2},
}

// fallbackPassages is the terminal fallback. Hardcoded text, always available.
var fallbackPassages = []Passage{
	New("fallback_1", "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.", "John 3:16"),
	New("fallback_2", "I can do all things through Christ which strengtheneth me.", "Philippians 4:13"),
	New("fallback_3", "Trust in the LORD with all thine heart; and lean not unto thine own understanding.", "Proverbs 3:5"),
}

// FamousVerses returns the curated famous verse set.
func FamousVerses() []Passage {
	return famousVerses
}

// PresetRefs returns the preset passage references.
func PresetRefs() []VerseRef {
	return presetRefs
}

// FallbackPassages returns the hardcoded terminal-fallback passages.
func FallbackPassages() []Passage {
	return fallbackPassages
}
