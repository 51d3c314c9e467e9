// Package doctor implements the diagnostic checks behind the doctor command.
// Each check writes [ OK ]/[MISS]/[FAIL] status lines to a caller-supplied
// writer and pairs every failure with the remediation a build operator should
// take, mirroring the symptoms seen in the field: tesseract not installed,
// trained data absent, the application build directory missing, or a bundled
// runtime that does not run.
package doctor
