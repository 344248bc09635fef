package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"schemegen/config"
	"schemegen/gen"
	"schemegen/parallel"
)

var cli struct {
	Workers  int             `help:"Number of workers, one per CPU when 0" default:"0" short:"w"`
	LogLevel string          `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	NoColor  bool            `help:"Disable colored log output" default:"false"`
	Config   kong.ConfigFlag `help:"TOML file with flag defaults" short:"c"`

	Gen gen.CLICmd `cmd:"" help:"Generate a base16 scheme from an image"`
}

func setupLogging(level string, noColor bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	w := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor || !isatty.IsTerminal(w.Fd()),
	})))
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("schemegen"),
		kong.Description("Generate base16 color schemes from images."),
		kong.UsageOnError(),
		kong.Configuration(config.TOMLResolver),
	)

	setupLogging(cli.LogLevel, cli.NoColor)

	pool := parallel.Start(cli.Workers)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
