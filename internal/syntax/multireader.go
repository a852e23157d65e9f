package syntax

// FileSource names one input file's text. Order in a []FileSource is
// significant: it is the concatenation order the lexer walks.
type FileSource struct {
	ID   string
	Text string
}

// SourcesFromString wraps a single anonymous source string as a
// one-element file list, for callers that don't care about file
// identity.
func SourcesFromString(text string) []FileSource {
	return []FileSource{{ID: "", Text: text}}
}

// SourcesFromMap builds an ordered file list from file identifiers in
// the given order, paired with their text from the map. Unknown
// identifiers in order are skipped.
func SourcesFromMap(order []string, byID map[string]string) []FileSource {
	files := make([]FileSource, 0, len(order))
	for _, id := range order {
		text, ok := byID[id]
		if !ok {
			continue
		}
		files = append(files, FileSource{ID: id, Text: text})
	}
	return files
}

// MultiReader composes an ordered sequence of named sources into a
// single logical character stream, exposing the Reader for the
// currently active file and stepping to the next file on demand.
//
// Like Reader, MultiReader is an immutable value: NextFile and
// WithCurrent return a new MultiReader rather than mutating the
// receiver. The lexer owns one MultiReader value and reassigns its
// own field as it advances.
type MultiReader struct {
	files []FileSource
	index int
	cur   Reader
}

// NewMultiReader builds a MultiReader positioned at the start of the
// first file. An empty file list yields a MultiReader with no current
// reader; callers must check MoreFiles/Eof before using Current.
func NewMultiReader(files []FileSource) MultiReader {
	m := MultiReader{files: files, index: 0}
	if len(files) > 0 {
		m.cur = NewReader(files[0].ID, files[0].Text)
	}
	return m
}

// Current returns the Reader for the active file.
func (m MultiReader) Current() Reader {
	return m.cur
}

// WithCurrent returns a MultiReader identical to m except that its
// active-file Reader is replaced by r. Used by the lexer after every
// advancement on the current file.
func (m MultiReader) WithCurrent(r Reader) MultiReader {
	next := m
	next.cur = r
	return next
}

// MoreFiles reports whether there is a file after the active one.
func (m MultiReader) MoreFiles() bool {
	return m.index+1 < len(m.files)
}

// NextFile advances to the next file in the sequence, carrying the
// active reader's region stack over the file boundary (spec.md §4.1:
// "the region label lives on the reader, not on the file"). Calling
// NextFile when MoreFiles is false returns m unchanged.
func (m MultiReader) NextFile() MultiReader {
	if !m.MoreFiles() {
		return m
	}
	next := m
	next.index++
	f := m.files[next.index]
	next.cur = NewReader(f.ID, f.Text).withRegionStack(m.cur.regionStack())
	return next
}

// Eof reports whether the entire multi-file stream is exhausted: the
// active file is at EOF and there is no next file to move to.
func (m MultiReader) Eof() bool {
	return m.cur.Eof() && !m.MoreFiles()
}
