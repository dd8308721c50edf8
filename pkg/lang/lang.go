// Package lang classifies source files by language using file extensions.
package lang

import (
	"path/filepath"
	"strings"
)

// Language represents a supported programming language.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
	LangC          Language = "c"
	LangCSharp     Language = "csharp"
	LangTypeScript Language = "typescript"
	LangRuby       Language = "ruby"
	LangGo         Language = "go"
	LangUnknown    Language = "unknown"
)

var byExtension = map[string]Language{
	".py":   LangPython,
	".js":   LangJavaScript,
	".java": LangJava,
	".cpp":  LangCPP,
	".c":    LangC,
	".cs":   LangCSharp,
	".ts":   LangTypeScript,
	".rb":   LangRuby,
	".go":   LangGo,
}

// Detect returns the language for a file based on its extension.
// The lookup is case-insensitive; unrecognized extensions map to LangUnknown.
func Detect(filename string) Language {
	ext := strings.ToLower(filepath.Ext(filename))
	if l, ok := byExtension[ext]; ok {
		return l
	}
	return LangUnknown
}

// String returns the language name.
func (l Language) String() string {
	return string(l)
}
