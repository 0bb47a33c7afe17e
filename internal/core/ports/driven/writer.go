package driven

// DocumentWriter is the external word-processing writer. The assembler
// maps content-plan blocks onto these calls in plan order; the writer
// owns page layout, fonts and the binary encoding.
type DocumentWriter interface {
	// WriteHeading emits a heading at the given level (1 = document title).
	WriteHeading(level int, text string) error

	// WriteParagraph emits a body paragraph.
	WriteParagraph(text string) error

	// WriteList emits a bulleted list.
	WriteList(items []string) error

	// WriteSignatureTable emits a two-row, two-column block with the role
	// labels bolded and the names centered beneath them.
	WriteSignatureTable(chairLabel, secretaryLabel, chairName, secretaryName string) error

	// Save writes the binary artifact to path.
	Save(path string) error
}

// WriterFactory creates a fresh writer per generation request so that
// parallel requests never share writer state.
type WriterFactory func() DocumentWriter
