// Package cli implements the teamdraw command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/teamdraw"
	"github.com/arloliu/teamdraw/internal/logging"
	"github.com/arloliu/teamdraw/types"
)

// envPrefix prefixes every environment override, e.g. TEAMDRAW_MIRROR_BUCKET.
const envPrefix = "TEAMDRAW"

// app holds the state shared by all subcommands of one root command.
type app struct {
	v      *viper.Viper
	logger types.Logger
	sync   func() error
}

// NewRootCommand builds the teamdraw command tree.
//
// Every call returns an independent tree with its own configuration, so tests
// can run commands side by side.
//
// Returns:
//   - *cobra.Command: Root command with draw, lookup, search, clear and watch
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "teamdraw",
		Short: "Draw department-balanced teams and let people look up their team",
		Long: `teamdraw splits a roster into teams of near-equal size, spreading each
department across the teams. A published draw is shared through a NATS
JetStream KV bucket, so participants can look up their team from any machine.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default ./teamdraw.yaml when present)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("nats-url", "", "NATS server URL for the shared published draw")
	_ = a.v.BindPFlag("config", pf.Lookup("config"))
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("nats.url", pf.Lookup("nats-url"))

	root.AddCommand(
		a.drawCommand(),
		a.lookupCommand(),
		a.searchCommand(),
		a.clearCommand(),
		a.watchCommand(),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	setDefaults(a.v)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	} else {
		a.v.SetConfigName("teamdraw")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if a.v.GetBool("verbose") {
		log, err := logging.NewZap()
		if err != nil {
			return err
		}
		a.logger, a.sync = log, log.Sync
	} else {
		log := logging.NewZapWriter(cmd.ErrOrStderr(), zapcore.WarnLevel)
		a.logger, a.sync = log, log.Sync
	}

	return nil
}

func (a *app) close() {
	if a.sync != nil {
		_ = a.sync()
	}
}

// setDefaults registers every Config key so env overrides are recognized.
func setDefaults(v *viper.Viper) {
	d := teamdraw.DefaultConfig()

	v.SetDefault("defaultTeams", d.DefaultTeams)
	v.SetDefault("minTeams", d.MinTeams)
	v.SetDefault("maxTeams", d.MaxTeams)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("suggestions.maxResults", d.Suggestions.MaxResults)
	v.SetDefault("suggestions.minSimilarity", d.Suggestions.MinSimilarity)
	v.SetDefault("mirror.bucket", d.Mirror.Bucket)
	v.SetDefault("mirror.key", d.Mirror.Key)
	v.SetDefault("mirror.replicas", d.Mirror.Replicas)
	v.SetDefault("mirror.operationTimeout", d.Mirror.OperationTimeout)
	v.SetDefault("mirror.startupTimeout", d.Mirror.StartupTimeout)
	v.SetDefault("nats.url", "")
}

// config decodes the merged defaults, file, env and flags.
func (a *app) config() (*teamdraw.Config, error) {
	var cfg teamdraw.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &cfg, nil
}

func (a *app) newManager(cfg *teamdraw.Config, opts ...teamdraw.Option) (*teamdraw.Manager, error) {
	opts = append([]teamdraw.Option{teamdraw.WithLogger(a.logger)}, opts...)

	return teamdraw.NewManager(cfg, opts...)
}

// connect dials the NATS server named by --nats-url or TEAMDRAW_NATS_URL.
func (a *app) connect() (*nats.Conn, error) {
	url := a.v.GetString("nats.url")
	if url == "" {
		return nil, fmt.Errorf("%w: set --nats-url or %s_NATS_URL", teamdraw.ErrMirrorNotConfigured, envPrefix)
	}

	nc, err := nats.Connect(url, nats.Name("teamdraw"), nats.Timeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", teamdraw.ErrConnectivity, err)
	}

	return nc, nil
}

// startShared connects, builds a mirrored manager and starts it.
//
// The returned stop function stops the manager and closes the connection.
func (a *app) startShared(ctx context.Context, opts ...teamdraw.Option) (*teamdraw.Manager, func(), error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	nc, err := a.connect()
	if err != nil {
		return nil, nil, err
	}

	mgr, err := a.newManager(cfg, append(opts, teamdraw.WithNATS(nc))...)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	if err := mgr.Start(ctx); err != nil {
		nc.Close()
		return nil, nil, err
	}

	stop := func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mgr.Stop(stopCtx); err != nil {
			a.logger.Warn("failed to stop manager", "error", err)
		}
		nc.Close()
	}

	return mgr, stop, nil
}
