package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackuml/internal/server"
	"github.com/matzehuels/stackuml/pkg/cache"
	"github.com/matzehuels/stackuml/pkg/observability"
	"github.com/matzehuels/stackuml/pkg/pipeline"
	"github.com/matzehuels/stackuml/pkg/store"
)

// Environment fallbacks for serve flags.
const (
	envRedisURL = "STACKUML_REDIS_URL"
	envMongoURI = "STACKUML_MONGO_URI"
)

type serveOpts struct {
	addr     string
	redisURL string
	mongoURI string
	mongoDB  string
	noCache  bool
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		redisURL: os.Getenv(envRedisURL),
		mongoURI: os.Getenv(envMongoURI),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Run the HTTP rendering API.

Artifacts are cached in Redis when --redis-url (or ` + envRedisURL + `) is set,
otherwise in the local cache directory. Saved diagrams are stored in MongoDB
when --mongo-uri (or ` + envMongoURI + `) is set, otherwise in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", opts.redisURL, "Redis URL for the artifact cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB URI for saved diagrams")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	runner, err := c.serveRunner(connectCtx, opts)
	if err != nil {
		return err
	}

	st, err := c.serveStore(connectCtx, opts)
	if err != nil {
		runner.Close()
		return err
	}

	rec := observability.NewRecorder()
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)
	defer observability.Reset()

	srv := server.New(server.Config{
		Runner: runner,
		Store:  st,
		Stats:  rec,
		Logger: c.Logger,
	})
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(closeCtx); err != nil {
			c.Logger.Warn("shutdown", "error", err)
		}
	}()

	printInfo("Serving on %s", StyleHighlight.Render(opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serveRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	if opts.noCache || opts.redisURL == "" {
		runner, err := c.newRunner(opts.noCache)
		if err != nil {
			return nil, fmt.Errorf("initialize runner: %w", err)
		}
		return runner, nil
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Info("using redis artifact cache")
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":v1:")
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}

func (c *CLI) serveStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	c.Logger.Info("using mongo diagram store", "database", opts.mongoDB)
	return ms, nil
}
