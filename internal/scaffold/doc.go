// Package scaffold generates starter bundle manifests from embedded
// templates, pre-filled with the stock artifact set: the tesseract
// executable, English and Japanese trained data, and the four image
// libraries the runtime loads at startup.
package scaffold
