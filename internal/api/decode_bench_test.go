package api

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rshade/slayerdex/internal/character"
)

func generateSummaryJSON(index int) string {
	return fmt.Sprintf(`{"id":%d,"name":"Character %d","img":"https://img.example/%d.png"}`, index, index, index)
}

func benchmarkDecode(b *testing.B, count int, wrapped bool) {
	b.ReportAllocs()
	items := make([]string, count)
	for i := range items {
		items[i] = generateSummaryJSON(i)
	}
	body := "[" + strings.Join(items, ",") + "]"
	if wrapped {
		body = `{"content":` + body + `}`
	}
	data := []byte(body)

	b.ResetTimer()
	for range b.N {
		got, err := decodeCollection[character.Summary](data)
		if err != nil {
			b.Fatal(err)
		}
		if len(got) != count {
			b.Fatalf("decoded %d items, want %d", len(got), count)
		}
	}
}

// BenchmarkDecode_Listing benchmarks a default-sized listing in both shapes.
func BenchmarkDecode_Listing(b *testing.B) {
	b.Run("wrapped", func(b *testing.B) { benchmarkDecode(b, 45, true) })
	b.Run("bare", func(b *testing.B) { benchmarkDecode(b, 45, false) })
}

// BenchmarkDecode_LargeListing benchmarks a 10k item listing.
func BenchmarkDecode_LargeListing(b *testing.B) {
	benchmarkDecode(b, 10000, true)
}
