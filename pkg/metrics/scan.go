package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/source"
)

// maxLineLength is the PEP 8 style limit applied to every language.
const maxLineLength = 79

// decisionKeywords are the branch and loop constructs that contribute to
// cyclomatic complexity. Each keyword adds at most one per line.
var decisionKeywords = []string{
	"if", "elif", "else if", "for", "while", "case", "switch",
	"catch", "except", "&&", "||", "?", "and", "or",
}

var decisionPatterns = compileKeywords(decisionKeywords)

func compileKeywords(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}

// Declaration patterns are deliberately broad so they work across the
// supported languages. Functions are lines that begin with an optional
// declaration keyword followed by an identifier and parentheses; classes
// and interfaces are lines that begin with the respective keyword.
var (
	functionPattern = regexp.MustCompile(`^\s*(def|function|func|public\s+static|private\s+static|` +
		`public|private|protected|static|final)?\s*\w+\s*\(.*\)`)
	classPattern     = regexp.MustCompile(`^\s*(class|struct)\b`)
	interfacePattern = regexp.MustCompile(`^\s*interface\b`)
	commentPrefixes  = []string{"#", "//", "/*", "*", "--"}
	indentPattern    = regexp.MustCompile(`^\s+`)
)

// Scan analyzes the file at path and returns its metrics.
// Unreadable files return an error; callers treat that as a skip.
func Scan(path string) (*FileMetrics, error) {
	return ScanSource(source.NewFilesystem(), path)
}

// ScanSource analyzes a file read through the given content source.
func ScanSource(src source.ContentSource, path string) (*FileMetrics, error) {
	data, err := src.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ScanBytes(data, path), nil
}

// ScanBytes analyzes raw file content. Invalid UTF-8 is carried through
// rather than rejected; binary junk simply fails to match any pattern.
func ScanBytes(data []byte, path string) *FileMetrics {
	fm := &FileMetrics{
		Path:                 path,
		Language:             lang.Detect(path),
		CyclomaticComplexity: 1, // baseline per McCabe
	}

	var indentChar rune
	haveIndent := false

	for _, line := range SplitLines(data) {
		fm.LineCount++
		stripped := strings.TrimSpace(line)

		if hasCommentPrefix(stripped) {
			fm.CommentCount++
		}

		// Indentation style only matters for Python, where mixing tabs
		// and spaces is an outright error in the language.
		if fm.Language == lang.LangPython {
			if indent := indentPattern.FindString(line); indent != "" {
				ch, _ := utf8.DecodeRuneInString(indent)
				if !haveIndent {
					indentChar = ch
					haveIndent = true
				} else if ch != indentChar {
					fm.MixedIndent = true
				}
			}
		}

		if utf8.RuneCountInString(line) > maxLineLength {
			fm.LongLineCount++
		}

		// One increment per line even if a pattern matches repeatedly.
		if functionPattern.MatchString(line) {
			fm.NumFunctions++
		}
		if classPattern.MatchString(line) {
			fm.NumClasses++
		}
		if interfacePattern.MatchString(line) {
			fm.NumInterfaces++
		}

		for _, p := range decisionPatterns {
			if p.MatchString(line) {
				fm.CyclomaticComplexity++
			}
		}
	}

	fm.ComplexityCategory = CategoryFor(fm.CyclomaticComplexity)
	fm.CommentRatio = ratio(fm.CommentCount, fm.LineCount)
	fm.LongLineRatio = ratio(fm.LongLineCount, fm.LineCount)
	return fm
}

func hasCommentPrefix(stripped string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}

// SplitLines splits file content into lines without terminators.
// A trailing newline does not produce an empty final line, and CRLF
// endings are treated the same as LF.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
