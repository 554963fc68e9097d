package passage

// Book describes one Bible book in the catalog used for random selection.
type Book struct {
	// Name is the display name, e.g. "1 Corinthians".
	Name string
	// Code is the USFM identifier used by the scripture API, e.g. "1CO".
	Code string
	// Chapters is the number of chapters in the book.
	Chapters int
	// AvgVerses is the average verse count per chapter, used to keep random
	// verse picks inside chapter bounds with high probability.
	AvgVerses int
}

// books lists all 66 books. Average verse counts are rough editorial
// estimates, not exact per-chapter data.
var books = []Book{
	// Old Testament.
	{Name: "Genesis", Code: "GEN", Chapters: 50, AvgVerses: 26},
	{Name: "Exodus", Code: "EXO", Chapters: 40, AvgVerses: 25},
	{Name: "Leviticus", Code: "LEV", Chapters: 27, AvgVerses: 24},
	{Name: "Numbers", Code: "NUM", Chapters: 36, AvgVerses: 26},
	{Name: "Deuteronomy", Code: "DEU", Chapters: 34, AvgVerses: 28},
	{Name: "Joshua", Code: "JOS", Chapters: 24, AvgVerses: 21},
	{Name: "Judges", Code: "JDG", Chapters: 21, AvgVerses: 24},
	{Name: "Ruth", Code: "RUT", Chapters: 4, AvgVerses: 18},
	{Name: "1 Samuel", Code: "1SA", Chapters: 31, AvgVerses: 25},
	{Name: "2 Samuel", Code: "2SA", Chapters: 24, AvgVerses: 24},
	{Name: "1 Kings", Code: "1KI", Chapters: 22, AvgVerses: 27},
	{Name: "2 Kings", Code: "2KI", Chapters: 25, AvgVerses: 23},
	{Name: "1 Chronicles", Code: "1CH", Chapters: 29, AvgVerses: 26},
	{Name: "2 Chronicles", Code: "2CH", Chapters: 36, AvgVerses: 24},
	{Name: "Ezra", Code: "EZR", Chapters: 10, AvgVerses: 22},
	{Name: "Nehemiah", Code: "NEH", Chapters: 13, AvgVerses: 25},
	{Name: "Esther", Code: "EST", Chapters: 10, AvgVerses: 17},
	{Name: "Job", Code: "JOB", Chapters: 42, AvgVerses: 20},
	{Name: "Psalms", Code: "PSA", Chapters: 150, AvgVerses: 12},
	{Name: "Proverbs", Code: "PRO", Chapters: 31, AvgVerses: 22},
	{Name: "Ecclesiastes", Code: "ECC", Chapters: 12, AvgVerses: 14},
	{Name: "Song of Solomon", Code: "SNG", Chapters: 8, AvgVerses: 13},
	{Name: "Isaiah", Code: "ISA", Chapters: 66, AvgVerses: 21},
	{Name: "Jeremiah", Code: "JER", Chapters: 52, AvgVerses: 26},
	{Name: "Lamentations", Code: "LAM", Chapters: 5, AvgVerses: 17},
	{Name: "Ezekiel", Code: "EZK", Chapters: 48, AvgVerses: 23},
	{Name: "Daniel", Code: "DAN", Chapters: 12, AvgVerses: 21},
	{Name: "Hosea", Code: "HOS", Chapters: 14, AvgVerses: 11},
	{Name: "Joel", Code: "JOL", Chapters: 3, AvgVerses: 16},
	{Name: "Amos", Code: "AMO", Chapters: 9, AvgVerses: 13},
	{Name: "Obadiah", Code: "OBA", Chapters: 1, AvgVerses: 21},
	{Name: "Jonah", Code: "JON", Chapters: 4, AvgVerses: 10},
	{Name: "Micah", Code: "MIC", Chapters: 7, AvgVerses: 11},
	{Name: "Nahum", Code: "NAM", Chapters: 3, AvgVerses: 13},
	{Name: "Habakkuk", Code: "HAB", Chapters: 3, AvgVerses: 13},
	{Name: "Zephaniah", Code: "ZEP", Chapters: 3, AvgVerses: 13},
	{Name: "Haggai", Code: "HAG", Chapters: 2, AvgVerses: 15},
	{Name: "Zechariah", Code: "ZEC", Chapters: 14, AvgVerses: 14},
	{Name: "Malachi", Code: "MAL", Chapters: 4, AvgVerses: 14},
	// New Testament.
	{Name: "Matthew", Code: "MAT", Chapters: 28, AvgVerses: 24},
	{Name: "Mark", Code: "MRK", Chapters: 16, AvgVerses: 28},
	{Name: "Luke", Code: "LUK", Chapters: 24, AvgVerses: 28},
	{Name: "John", Code: "JHN", Chapters: 21, AvgVerses: 24},
	{Name: "Acts", Code: "ACT", Chapters: 28, AvgVerses: 26},
	{Name: "Romans", Code: "ROM", Chapters: 16, AvgVerses: 22},
	{Name: "1 Corinthians", Code: "1CO", Chapters: 16, AvgVerses: 22},
	{Name: "2 Corinthians", Code: "2CO", Chapters: 13, AvgVerses: 17},
	{Name: "Galatians", Code: "GAL", Chapters: 6, AvgVerses: 18},
	{Name: "Ephesians", Code: "EPH", Chapters: 6, AvgVerses: 20},
	{Name: "Philippians", Code: "PHP", Chapters: 4, AvgVerses: 20},
	{Name: "Colossians", Code: "COL", Chapters: 4, AvgVerses: 18},
	{Name: "1 Thessalonians", Code: "1TH", Chapters: 5, AvgVerses: 18},
	{Name: "2 Thessalonians", Code: "2TH", Chapters: 3, AvgVerses: 13},
	{Name: "1 Timothy", Code: "1TI", Chapters: 6, AvgVerses: 16},
	{Name: "2 Timothy", Code: "2TI", Chapters: 4, AvgVerses: 16},
	{Name: "Titus", Code: "TIT", Chapters: 3, AvgVerses: 13},
	{Name: "Philemon", Code: "PHM", Chapters: 1, AvgVerses: 25},
	{Name: "Hebrews", Code: "HEB", Chapters: 13, AvgVerses: 20},
	{Name: "James", Code: "JAS", Chapters: 5, AvgVerses: 17},
	{Name: "1 Peter", Code: "1PE", Chapters: 5, AvgVerses: 18},
	{Name: "2 Peter", Code: "2PE", Chapters: 3, AvgVerses: 15},
	{Name: "1 John", Code: "1JN", Chapters: 5, AvgVerses: 18},
	{Name: "2 John", Code: "2JN", Chapters: 1, AvgVerses: 13},
	{Name: "3 John", Code: "3JN", Chapters: 1, AvgVerses: 14},
	{Name: "Jude", Code: "JUD", Chapters: 1, AvgVerses: 25},
	{Name: "Revelation", Code: "REV", Chapters: 22, AvgVerses: 18},
}

// booksByCode indexes the catalog by USFM code.
var booksByCode = func() map[string]Book {
	m := make(map[string]Book, len(books))
	for _, b := range books {
		m[b.Code] = b
	}

	return m
}()

// Books returns the full catalog. Callers must not mutate the result.
func Books() []Book {
	return books
}

// BookByCode looks a book up by its USFM code.
func BookByCode(code string) (Book, bool) {
	b, ok := booksByCode[code]

	return b, ok
}

// AllBookCodes returns the USFM codes of every book in catalog order.
func AllBookCodes() []string {
	codes := make([]string, 0, len(books))
	for _, b := range books {
		codes = append(codes, b.Code)
	}

	return codes
}
