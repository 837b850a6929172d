package glog

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

// newBenchBackend builds a backend that discards its output, so the
// benchmarks measure construction and forwarding overhead only.
func newBenchBackend() *ZerologBackend {
	b := NewZerologBackend()
	_ = b.SetPrimaryConfig(PrimaryConfig{Level: ConfigAll})
	_ = b.SetHandlerConfig(DefaultHandler, HandlerConfig{Level: ConfigAll, Writer: io.Discard})
	return b
}

func makeWrapChain(depth int) error {
	if depth <= 0 {
		return nil
	}
	err := errors.New("root cause message")
	for i := 1; i < depth; i++ {
		err = fmt.Errorf("wrap %d: %w", i, err)
	}
	return err
}

func BenchmarkContext_Add(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New().Add("k", "v").Add("n", i)
	}
}

func BenchmarkInfo_NoErr(b *testing.B) {
	prev := SetBackend(newBenchBackend())
	defer SetBackend(prev)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New().Add("k", "v").Add("n", i).Info("hello")
	}
}

func BenchmarkError_WrapChain3(b *testing.B) {
	prev := SetBackend(newBenchBackend())
	defer SetBackend(prev)

	err := makeWrapChain(3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New().AddField(Err(err)).Error("oops")
	}
}

func BenchmarkError_WrapChain6(b *testing.B) {
	prev := SetBackend(newBenchBackend())
	defer SetBackend(prev)

	err := makeWrapChain(6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New().AddField(Err(err)).Error("oops")
	}
}

func BenchmarkFormat(b *testing.B) {
	args := []Arg{NewArg("foo"), NewArg("bar")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Format("{0} is the new {1}", args...)
	}
}

func BenchmarkInfof_Template(b *testing.B) {
	prev := SetBackend(newBenchBackend())
	defer SetBackend(prev)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New().Add("k", "v").Infof("{0} is the new {1}", NewArg("foo"), NewArg("bar"))
	}
}

func BenchmarkDump(b *testing.B) {
	type inner struct {
		Value string
	}
	type payload struct {
		ID    int
		Name  string
		Inner inner
		Tags  []string
	}
	p := payload{ID: 7, Name: "bench", Inner: inner{Value: "deep"}, Tags: []string{"a", "b"}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Dump(p)
	}
}

func BenchmarkParallel_Info(b *testing.B) {
	prev := SetBackend(newBenchBackend())
	defer SetBackend(prev)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			New().Add("k", "v").Info("hi")
		}
	})
}
