package strbuf

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkCopy(b *testing.B) {
	var s String64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Copy("extruder temperature reading")
	}
}

func BenchmarkCatAccumulate(b *testing.B) {
	var s String64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		s.Cat("X:")
		s.Cat("10.00")
		s.CatByte(' ')
		s.Cat("Y:")
		s.Cat("20.00")
	}
}

func BenchmarkPrepend(b *testing.B) {
	var s String64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Copy("heater fault")
		s.Prepend("Error: ")
	}
}

func BenchmarkPrintf(b *testing.B) {
	var s String64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Printf("T:%d /%d B:%d", 210, 215, 60)
	}
}

func BenchmarkSprintf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("T:%d /%d B:%d", 210, 215, 60)
	}
}

func BenchmarkStringsBuilder(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		sb.WriteString("X:")
		sb.WriteString("10.00")
		sb.WriteByte(' ')
		sb.WriteString("Y:")
		sb.WriteString("20.00")
		_ = sb.String()
	}
}

func BenchmarkConstantTimeEqual(b *testing.B) {
	var x, y String32
	x.CopyAndPad("s3cr3t-token-0001")
	y.CopyAndPad("s3cr3t-token-0002")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.ConstantTimeEqual(&y)
	}
}
