package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/jfreymuth/oggvorbis"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/byteorder/pkg/pcm"
	"github.com/xaionaro-go/byteorder/pkg/wav"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/observability"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	pflag.Parse()

	if pflag.NArg() != 2 {
		panic("expected exactly two positional arguments: path to an Ogg Vorbis file and path to the output WAV file")
	}
	inPath := pflag.Arg(0)
	outPath := pflag.Arg(1)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	inFile, err := os.Open(inPath)
	assertNoError(err)
	defer inFile.Close()

	oggReader, err := oggvorbis.NewReader(inFile)
	assertNoError(err)

	format := pcm.FormatFloat32LE
	hdr := &wav.Header{
		Format:     format,
		Channels:   uint16(oggReader.Channels()),
		SampleRate: uint32(oggReader.SampleRate()),
		DataSize:   uint32(oggReader.Length()) * uint32(oggReader.Channels()) * uint32(format.BytesPerSample()),
	}
	logger.Infof(ctx, "decoding %s: channels:%d rate:%d duration:%s",
		inPath, hdr.Channels, hdr.SampleRate, hdr.Duration())

	outFile, err := os.Create(outPath)
	assertNoError(err)
	defer func() {
		assertNoError(outFile.Close())
	}()

	wc := datacounter.NewWriterCounter(outFile)
	assertNoError(wav.WriteHeader(wc, hdr))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	observability.Go(ctx, func(ctx context.Context) {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Debugf(ctx, "written: %d", wc.Count())
			}
		}
	})

	samples := make([]float32, 4096)
	var out []byte
	for {
		n, err := oggReader.Read(samples)
		if n > 0 {
			out = pcm.AppendFloat32(out[:0], format, samples[:n])
			_, wErr := wc.Write(out)
			assertNoError(wErr)
		}
		if err == io.EOF {
			break
		}
		assertNoError(err)
	}
	logger.Infof(ctx, "done: written %d bytes (%d of sample data)",
		wc.Count(), wc.Count()-44)
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
