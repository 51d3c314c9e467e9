// Package manifest defines the bundle.yaml document that drives a bundling
// run: which Tesseract installation to bundle, which trained-data languages
// are required, which shared libraries ride along, and where each platform's
// bundle lives. Parsing is plain YAML; structural validation goes through an
// embedded JSON Schema so error messages carry instance paths.
package manifest
