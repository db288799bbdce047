package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"imgview/internal/adapters/file"
	"imgview/internal/adapters/raster"
	"imgview/internal/adapters/settings"
	"imgview/internal/core/domain"
	"imgview/internal/core/domain/actions"
	"imgview/internal/core/port"
	"imgview/internal/core/service"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.String("config", "", "path to a config file (default ./config.toml)")
	pflag.String("backend", raster.BackendImaging, "raster backend: imaging, draw or nfnt")
	pflag.Int("canvas-width", 1280, "width available for the preview in fit mode")
	pflag.Int("canvas-height", 720, "height available for the preview in fit mode")
	pflag.String("output", "", "write the final preview to this file")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image path|url> [action ...]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := bindFlags(viper.GetViper(), pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("failed binding flags")
	}
	viper.SetDefault("viewer.log_level", "info")
	viper.SetDefault("viewer.download_timeout", "30s")

	if path, _ := pflag.CommandLine.GetString("config"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Debug().Msg("no config file found, using defaults")
	}

	var logLevel zerolog.Level

	switch viper.GetString("viewer.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, pflag.Arg(0), pflag.Args()[1:])
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("imgview failed")
	}
}

// bindFlags maps the command line flags onto their config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, b := range []struct{ key, flag string }{
		{"viewer.backend", "backend"},
		{"viewer.canvas_width", "canvas-width"},
		{"viewer.canvas_height", "canvas-height"},
	} {
		if err := v.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			return fmt.Errorf("failed binding flag %s: %w", b.flag, err)
		}
	}

	return nil
}

// run previews source and applies the given actions. Every exit goes through its defers, so a downloaded source is
// always removed.
func run(ctx context.Context, source string, inputs []string) error {
	decoder, err := raster.New(viper.GetString("viewer.backend"))
	if err != nil {
		return fmt.Errorf("failed initializing raster backend: %w", err)
	}

	path := source
	if file.IsRemote(source) {
		dlCtx, dlCancel := context.WithTimeout(ctx, viper.GetDuration("viewer.download_timeout"))
		path, err = file.FetchToTemp(dlCtx, source)
		dlCancel()
		if err != nil {
			return fmt.Errorf("could not download image %s: %w", source, err)
		}
		defer file.RemoveTempFile(path)
	}

	img, err := service.LoadImage(decoder, path)
	if err != nil {
		return fmt.Errorf("couldn't load image: %w", err)
	}

	var store port.SettingsStore = settings.NewStore(viper.GetViper())
	size, err := store.PreviewSize()
	if err != nil {
		return err
	}

	viewer := service.NewViewer(img, actions.NewDefaultRegistry(), size)
	if err := viewer.SetCanvas(viper.GetInt("viewer.canvas_width"), viper.GetInt("viewer.canvas_height")); err != nil {
		return fmt.Errorf("failed to fit preview to canvas: %w", err)
	}
	if size.Kind() != domain.BestFit {
		if err := viewer.Refresh(); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
	}

	for _, input := range inputs {
		if err := viewer.Perform(input); err != nil {
			log.Warn().Err(err).Str("action", input).Msg("action failed")
		}
	}

	log.Info().Str("source", source).Str("status", viewer.Status()).Msg("preview ready")

	if output, _ := pflag.CommandLine.GetString("output"); output != "" {
		if err := imaging.Save(viewer.Preview().Image(), output); err != nil {
			return fmt.Errorf("failed to save preview to %s: %w", output, err)
		}
		log.Info().Str("output", output).Msg("saved preview")
	}

	if viper.GetBool("viewer.remember_preview_size") {
		if err := store.SavePreviewSize(viewer.Size()); err != nil {
			log.Warn().Err(err).Msg("could not persist preview size")
		}
	}

	return nil
}
