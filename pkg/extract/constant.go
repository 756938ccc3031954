package extract

// WarningMarker prefixes every in-band "cannot extract" message.
const WarningMarker = "⚠️"

// In-band warning messages returned instead of text.
const (
	MsgPDFUnreadable  = WarningMarker + " Could not extract readable text from this PDF. Please copy the content manually or use a text file (.txt, .md)."
	MsgDOCXUnreadable = WarningMarker + " Could not extract text from this Word document. Please copy the content manually."
	MsgDOCLegacy      = WarningMarker + " Legacy .doc format. Please convert it to .docx or copy the content manually."
	MsgPPTXUnreadable = WarningMarker + " Could not extract text from this presentation. Please copy the content manually."
	MsgTextEmpty      = WarningMarker + " The file is empty or contains no readable text."
	MsgHTMLUnreadable = WarningMarker + " Could not extract readable text from this HTML page. Please copy the content manually."
	MsgUnsupported    = WarningMarker + " File format not supported for extraction."
)

const (
	// pdfMinChars is the minimum amount of PDF text considered usable.
	pdfMinChars = 50
	// officeMinChars is the minimum amount of DOCX/PPTX text considered usable.
	officeMinChars = 20

	pdfRunMin = 20
	docRunMin = 15

	// maxInflatedBytes caps the decompressed size of a single archive entry or PDF stream.
	maxInflatedBytes = 32 << 20
)
