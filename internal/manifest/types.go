package manifest

// Manifest is the root of a bundle.yaml document.
type Manifest struct {
	Name        string            `yaml:"name" json:"name"`
	Version     string            `yaml:"version" json:"version"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Tesseract   TesseractSpec     `yaml:"tesseract,omitempty" json:"tesseract,omitempty"`
	Languages   []Language        `yaml:"languages" json:"languages"`
	Libraries   []Library         `yaml:"libraries,omitempty" json:"libraries,omitempty"`
	Targets     map[string]Target `yaml:"targets" json:"targets"`
}

// TesseractSpec pins the source Tesseract installation. All fields are
// optional; empty fields fall back to auto-detection of a package-manager
// install layout.
type TesseractSpec struct {
	// Binary is an explicit path to the tesseract executable.
	Binary string `yaml:"binary,omitempty" json:"binary,omitempty"`
	// Tessdata is an explicit path to the trained-data directory.
	Tessdata string `yaml:"tessdata,omitempty" json:"tessdata,omitempty"`
	// LibDir is an explicit path to the shared-library directory.
	LibDir string `yaml:"lib_dir,omitempty" json:"lib_dir,omitempty"`
	// MinVersion is a semver constraint the installed Tesseract must satisfy.
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Language names one trained-data file to bundle. Languages are mandatory
// unless marked optional: a missing mandatory trained-data file aborts the
// bundling run.
type Language struct {
	Code     string `yaml:"code" json:"code"`
	Optional bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// Library names one shared library to bundle. Libraries are optional unless
// marked required: a missing optional library is reported and skipped, a
// missing required library aborts the run.
type Library struct {
	Name     string `yaml:"name" json:"name"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// Target describes one platform's bundle destination.
type Target struct {
	// Bundle is the bundle directory produced by the application build:
	// the .app on macOS, the build output directory elsewhere.
	Bundle string `yaml:"bundle" json:"bundle"`
}

// DefaultFileName is the manifest file name looked up in the working
// directory when no --manifest flag is given.
const DefaultFileName = "bundle.yaml"

// RequiredLanguages returns the codes of all non-optional languages.
func (m *Manifest) RequiredLanguages() []string {
	var codes []string
	for _, l := range m.Languages {
		if !l.Optional {
			codes = append(codes, l.Code)
		}
	}
	return codes
}

// Target returns the target block for a platform name, if declared.
func (m *Manifest) Target(platform string) (Target, bool) {
	t, ok := m.Targets[platform]
	return t, ok
}
