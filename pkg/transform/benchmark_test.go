package transform

import (
	"strings"
	"testing"
)

// benchText is a mid-sized buffer with indented, mixed-width lines.
var benchText = strings.Repeat("    func main() {\n\t\tfmt.Println(\"héllo, wörld\")\n    }\n", 200)

func BenchmarkReverse(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		Reverse(benchText)
	}
}

func BenchmarkReverseGraphemes(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		ReverseGraphemes(benchText)
	}
}

func BenchmarkSpacesToTabs(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		SpacesToTabs(benchText, 4)
	}
}

func BenchmarkTabsToSpaces(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		TabsToSpaces(benchText, 4)
	}
}

func BenchmarkBase64RoundTrip(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		DecodeBase64(EncodeBase64(benchText))
	}
}

func BenchmarkURLRoundTrip(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		_, _ = DecodeURL(EncodeURL(benchText))
	}
}
