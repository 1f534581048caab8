//go:build bench
// +build bench

package pricklybird

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"small", 8},
	{"medium", 256},
	{"large", 4096},
}

func BenchmarkEncode(b *testing.B) {
	for _, bm := range benchSizes {
		data := randomPayload(1, bm.size)
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Encode(data)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bm := range benchSizes {
		text := Encode(randomPayload(1, bm.size))
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCalculateCRC8(b *testing.B) {
	for _, bm := range benchSizes {
		data := randomPayload(1, bm.size)
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = CalculateCRC8(data)
			}
		})
	}
}
