package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/content"
	"portfolio/controllers"
	"portfolio/models"
	"portfolio/services"
	"portfolio/utils"
	"portfolio/views"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	verbose    bool

	cfg    utils.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio site with AI-assisted infographic pages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bootstrap, _ := zap.NewDevelopment()
			if err := utils.LoadEnvWithFallback(bootstrap); err != nil {
				bootstrap.Warn("error loading env files", zap.Error(err))
			}
			var err error
			cfg, err = utils.LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger, err = utils.NewLogger(cfg.LogLevel, verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(), newPagesCmd(), newExportCmd(), newAskCmd())
	return root
}

// app is the wired set of services.
type app struct {
	site     *services.Site
	chat     *services.ChatService
	search   *services.SearchService
	carousel *services.Carousel
	discord  *services.DiscordService
}

func newApp(ctx context.Context) (*app, error) {
	gen := services.NewGenerator(cfg.AI, logger)
	logger.Info("using generator", zap.String("generator", gen.Name()))

	site := services.NewSite(services.NewGateway(gen, logger), cfg.FallbacksFor, logger)
	chat, err := services.NewChatService(site, cfg.Chat.MaxSessions, logger)
	if err != nil {
		return nil, err
	}
	search := services.NewSearchService(logger)
	if err := search.Index(ctx, content.Pages()); err != nil {
		return nil, fmt.Errorf("failed to index pages: %w", err)
	}
	discord, err := services.NewDiscordService(cfg.Discord, site, search, logger)
	if err != nil {
		return nil, err
	}
	return &app{
		site:     site,
		chat:     chat,
		search:   search,
		carousel: services.NewCarousel(content.Pages(), cfg.Carousel.Interval, logger),
		discord:  discord,
	}, nil
}

func newServeCmd() *cobra.Command {
	var noDiscord bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			renderer, err := views.New()
			if err != nil {
				return err
			}
			ctrl := controllers.NewController(controllers.Services{
				Site:     a.site,
				Chat:     a.chat,
				Search:   a.search,
				Carousel: a.carousel,
				Discord:  a.discord,
			}, renderer, logger)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           ctrl.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("server starting", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				logger.Info("shutting down server")
				return srv.Shutdown(shutdownCtx)
			})
			g.Go(func() error {
				return a.carousel.Run(gctx)
			})
			if !noDiscord && a.discord.IsEnabled() {
				g.Go(func() error {
					return a.discord.Run(gctx)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&noDiscord, "no-discord", false, "do not start the Discord bot")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List blog pages and their AI actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range content.Pages() {
				fmt.Fprintf(out, "%s\t%s\n", p.Slug, p.Title)
				for _, a := range p.Actions {
					fmt.Fprintf(out, "  %s\t%s (%s)\n", a.ID, a.Label, a.Input)
				}
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var asURI bool
	cmd := &cobra.Command{
		Use:   "export <slug>",
		Short: "Print the CSV export of an exportable page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, ok := content.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", services.ErrPageNotFound, args[0])
			}
			if !page.Exportable {
				return fmt.Errorf("page %s has no export", page.Slug)
			}
			csv := services.CentenarianCSV(content.Centenarians())
			if asURI {
				csv = services.DataURI(csv)
			}
			fmt.Fprintln(cmd.OutOrStdout(), csv)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asURI, "uri", false, "print the export as a data: URI")
	return cmd
}

func newAskCmd() *cobra.Command {
	var item, choice, duration, extra string
	var goals []string
	cmd := &cobra.Command{
		Use:   "ask <slug> <action> [text]",
		Short: "Run one page action against the configured AI backend",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			in := models.ActionRequest{Item: item, Choice: choice, Duration: duration, Goals: goals, Context: extra}
			if len(args) == 3 {
				in.Input = args[2]
			}
			res, err := a.site.Run(cmd.Context(), args[0], args[1], in, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case res.State.Error != nil:
				fmt.Fprintln(out, *res.State.Error)
			case res.State.Result != nil:
				fmt.Fprintln(out, *res.State.Result)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "content item (athlete name, benefit title)")
	cmd.Flags().StringVar(&choice, "choice", "", "selected option (topic key, audience)")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "practice goal, repeatable")
	cmd.Flags().StringVar(&duration, "duration", "", "session minutes")
	cmd.Flags().StringVar(&extra, "context", "", "second field of two-field actions (baseline risk, real statistic)")
	return cmd
}
