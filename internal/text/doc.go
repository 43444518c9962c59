// Package text measures leaf text for layout.
//
// Text is broken into rows by word, using advances from a
// golang.org/x/image/font Face. The default face is basicfont.Face7x13, a
// fixed 7x13 pixel face that needs no font files.
package text
