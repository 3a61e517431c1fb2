// Package detect classifies input files before they are transformed.
// It uses go-enry to tell text from binary content, to recognize vendored
// paths, and to name the language of a file for reports.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// LangText is reported when no language can be determined.
const LangText = "text"

// sniffLimit bounds how much content is inspected for language detection.
const sniffLimit = 16 * 1024

// IsBinary reports whether content looks like binary data.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	return enry.IsBinary(content)
}

// IsVendored reports whether path is a dependency or vendored directory
// (node_modules, vendor, third_party and so on).
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// IsGenerated reports whether the file looks machine generated.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(filepath.ToSlash(path), sniff(content))
}

// Language returns a lowercase language name for the file, or LangText.
//
// The file name and extension are tried first, then the shebang, then the
// content classifier.
func Language(path string, content []byte) string {
	name := filepath.Base(path)
	if path == "" || path == "-" {
		name = ""
	}

	if name != "" {
		if lang, safe := enry.GetLanguageByFilename(name); safe {
			return normalize(lang)
		}
		if lang, safe := enry.GetLanguageByExtension(name); safe {
			return normalize(lang)
		}
	}

	data := sniff(content)
	if len(data) == 0 {
		return LangText
	}
	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return normalize(lang)
	}
	if lang := enry.GetLanguage(name, data); lang != "" {
		return normalize(lang)
	}

	return LangText
}

func sniff(content []byte) []byte {
	if len(content) > sniffLimit {
		return content[:sniffLimit]
	}
	return content
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	switch lang {
	case "":
		return LangText
	case "Shell":
		return "bash"
	case "Text":
		return LangText
	}
	return strings.ReplaceAll(strings.ToLower(lang), " ", "-")
}
