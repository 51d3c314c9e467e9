package bundle

import "github.com/tessbundle-labs/tessbundle/internal/platform"

// Kind classifies a bundled artifact.
type Kind string

const (
	KindExecutable  Kind = "executable"
	KindTrainedData Kind = "traineddata"
	KindLibrary     Kind = "library"
)

// Artifact is one file the bundle must (or may) contain.
type Artifact struct {
	Kind     Kind
	Name     string // display name, e.g. "tesseract", "jpn", "libpng"
	Source   string // absolute source path; empty in verify-only trees
	Dest     string // absolute destination path inside the bundle
	Optional bool   // a missing optional artifact is skipped with a warning
}

// Plan is an ordered list of copy operations for one target platform.
// Artifacts are ordered executable, trained data, libraries, so a mandatory
// trained-data failure halts before any library is touched.
type Plan struct {
	Platform     platform.Target
	BundleDir    string
	ResourcesDir string
	Artifacts    []Artifact
}

// Result summarizes an executed plan.
type Result struct {
	Copied   int
	Skipped  int      // optional artifacts whose source was absent
	Warnings []string // one entry per skipped artifact
}

// Subtree names inside the bundle's resource directory.
const (
	RuntimeDir  = "tesseract"
	TessdataDir = "tessdata"
	LibDir      = "lib"
)
