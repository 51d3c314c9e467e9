// Package tesseract locates an installed Tesseract OCR runtime (executable,
// trained-data directory, shared-library directory) and drives the executable
// for version and language probes. The bundler never links against
// libtesseract: it treats the runtime as an external artifact to find, copy,
// and smoke-test.
package tesseract
