package entity

// ContentKind is the closed set of content types a Task can prompt for and a
// TaskSubmission can answer with. KindText carries literal text in the content
// field; every other kind carries a URL.
type ContentKind string

const (
	KindImage ContentKind = "image"
	KindVideo ContentKind = "video"
	KindPDF   ContentKind = "pdf"
	KindText  ContentKind = "text"
	KindAudio ContentKind = "audio"
)

// Kinds lists all valid content kinds.
func Kinds() []ContentKind {
	return []ContentKind{KindImage, KindVideo, KindPDF, KindText, KindAudio}
}

func (k ContentKind) Valid() bool {
	switch k {
	case KindImage, KindVideo, KindPDF, KindText, KindAudio:
		return true
	}
	return false
}

// IsURL reports whether content of this kind is expected to be a URL rather
// than literal text.
func (k ContentKind) IsURL() bool {
	return k != KindText
}
