// Package dist produces distribution artifacts from a verified bundle: a
// tar.gz (or zip on Windows) of the bundle tree plus a checksums.txt with
// its SHA-256, the same shape release pipelines expect.
package dist
