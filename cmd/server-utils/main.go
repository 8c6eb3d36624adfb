package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"go.mau.fi/util/ptr"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
	flag "maunium.net/go/mauflag"

	"github.com/beeper/server-utils/pkg/phpconfig"
	"github.com/beeper/server-utils/pkg/tzoffset"
)

type Config struct {
	Logging         zeroconfig.Config `yaml:"logging"`
	Interpreter     string            `yaml:"interpreter"`
	RefreshSchedule string            `yaml:"refresh_schedule"`
}

func defaultConfig() *Config {
	return &Config{
		Logging: zeroconfig.Config{
			MinLevel: ptr.Ptr(zerolog.InfoLevel),
			Writers: []zeroconfig.WriterConfig{{
				Type:   zeroconfig.WriterTypeStderr,
				Format: zeroconfig.LogFormatPrettyColored,
			}},
		},
	}
}

var (
	configPath  = flag.MakeFull("c", "config", "Path to the optional YAML config file", "").String()
	offsetZone  = flag.MakeFull("o", "offset", "Print the UTC offset in seconds for a zone", "").String()
	timeZone    = flag.MakeFull("t", "time", "Print the current local time in a zone", "").String()
	withSeconds = flag.MakeFull("s", "seconds", "Include seconds when printing times", "false").Bool()
	parsePath   = flag.MakeFull("p", "parse", "Convert a PHP config file to JSON and print it", "").String()
	watch       = flag.MakeFull("w", "watch", "With --offset: keep running and rewarm the cache on the configured schedule", "false").Bool()
	wantHelp, _ = flag.MakeHelpFlag()
)

func main() {
	flag.SetHelpTitles(
		"server-utils - timezone offset resolution and PHP config conversion",
		"server-utils [-c config.yaml] (-o zone [-w] | -t zone [-s] | -p file.php)",
	)
	if err := flag.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		return
	}

	cfg := defaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to read config:", err)
			os.Exit(2)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to parse config:", err)
			os.Exit(2)
		}
	}
	log, err := cfg.Logging.Compile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to configure logger:", err)
		os.Exit(2)
	}
	ctx := context.Background()

	switch {
	case *offsetZone != "":
		resolver := tzoffset.NewResolver(tzoffset.ResolverDeps{
			Interpreter: cfg.Interpreter,
			Log:         log.With().Str("component", "tzoffset").Logger(),
		})
		fmt.Println(resolver.GetOffset(ctx, *offsetZone))
		if *watch {
			watchOffsets(resolver, cfg.RefreshSchedule, log)
		}
	case *timeZone != "":
		resolver := tzoffset.NewResolver(tzoffset.ResolverDeps{
			Interpreter: cfg.Interpreter,
			Log:         log.With().Str("component", "tzoffset").Logger(),
		})
		fmt.Println(resolver.FormatLocalTime(ctx, time.Now(), *timeZone, *withSeconds))
	case *parsePath != "":
		converter := phpconfig.NewConverter(log.With().Str("component", "phpconfig").Logger())
		value, ok := converter.Parse(*parsePath)
		if !ok {
			os.Exit(1)
		}
		payload, err := json5.MarshalIndent(value, "", "  ")
		if err != nil {
			log.Err(err).Msg("Failed to encode parsed config")
			os.Exit(1)
		}
		fmt.Println(string(payload))
	default:
		flag.PrintHelp()
		os.Exit(1)
	}
}

func watchOffsets(resolver *tzoffset.Resolver, schedule string, log *zerolog.Logger) {
	refresher, err := tzoffset.NewRefresher(resolver, schedule, log.With().Str("component", "refresher").Logger())
	if err != nil {
		log.Err(err).Msg("Failed to set up refresher")
		os.Exit(2)
	}
	refresher.Start()
	defer refresher.Stop()
	log.Info().Msg("Watching offset cache, press Ctrl+C to exit")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
}
