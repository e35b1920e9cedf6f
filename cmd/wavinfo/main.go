package main

import (
	"context"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/byteorder/pkg/wav"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	readData := pflag.Bool("read-data", false, "Read through the data chunk and report its actual size")
	pflag.Parse()

	if pflag.NArg() != 1 {
		panic("expected exactly one positional argument: path to a WAV file")
	}
	filePath := pflag.Arg(0)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	file, err := os.Open(filePath)
	assertNoError(err)
	defer file.Close()

	r, err := wav.NewReader(file)
	assertNoError(err)

	os.Stdout.WriteString(spew.Sdump(r.Header))
	logger.Infof(ctx, "format:%s channels:%d rate:%d duration:%s",
		r.Header.Format, r.Header.Channels, r.Header.SampleRate, r.Header.Duration())

	if !*readData {
		return
	}
	n, err := io.Copy(io.Discard, r)
	assertNoError(err)
	logger.Infof(ctx, "data chunk: declared %d bytes, read %d bytes", r.Header.DataSize, n)
	if uint64(r.Header.DataSize) != r.BytesRead() {
		logger.Warnf(ctx, "the data chunk is truncated")
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
