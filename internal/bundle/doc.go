// Package bundle builds and executes copy plans that place a Tesseract
// runtime inside an application bundle: the executable under
// <resources>/tesseract/, trained data under <resources>/tesseract/tessdata/,
// and shared libraries under <resources>/tesseract/lib/. A missing mandatory
// artifact halts the run; a missing optional artifact is reported once and
// skipped. Verification re-walks the same expected tree against a built
// bundle.
package bundle
