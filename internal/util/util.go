package util

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

var Red = color.New(color.FgRed)
var Cyan = color.New(color.FgCyan)
var CyanBold = color.New(color.FgCyan).Add(color.Bold)
var Green = color.New(color.FgGreen)
var GreenBold = color.New(color.FgGreen).Add(color.Bold)
var Magenta = color.New(color.FgMagenta)

// Scanline reads one line from the scanner. It returns io.EOF when input
// ends before a line is available, so callers can treat it as the user
// walking away.
func Scanline(scanner *bufio.Scanner) (string, error) {
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ScanlineTrim : Scans input and trims
func ScanlineTrim(scanner *bufio.Scanner) (string, error) {
	line, err := Scanline(scanner)
	return strings.TrimSpace(line), err
}

// Mask hides all but the first and last character of a secret.
func Mask(secret string) string {
	if len(secret) <= 2 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:1] + strings.Repeat("*", len(secret)-2) + secret[len(secret)-1:]
}
