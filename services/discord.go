package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio/content"
	"portfolio/models"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// discordLimit is Discord's maximum message length.
const discordLimit = 2000

const chunkPause = 200 * time.Millisecond

// DiscordService answers page questions and site searches in Discord.
type DiscordService struct {
	session       *discordgo.Session
	site          *Site
	search        *SearchService
	commandPrefix string
	enabled       bool
	startTime     time.Time
	logger        *zap.Logger
}

// NewDiscordService creates the bot. When switched off in the config or
// without a token the service is disabled and Run returns immediately.
func NewDiscordService(cfg models.DiscordConfig, site *Site, search *SearchService, logger *zap.Logger) (*DiscordService, error) {
	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!ask "
	}
	d := &DiscordService{
		site:          site,
		search:        search,
		commandPrefix: prefix,
		startTime:     time.Now(),
		logger:        logger.Named("discord"),
	}
	if !cfg.Enabled {
		d.logger.Info("discord bot disabled by configuration")
		return d, nil
	}
	if cfg.Token == "" {
		d.logger.Info("discord bot disabled: DISCORD_BOT_TOKEN not set")
		return d, nil
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	session.AddHandler(func(s *discordgo.Session, event *discordgo.Ready) {
		d.logger.Info("bot online", zap.String("user", event.User.Username), zap.Int("guilds", len(event.Guilds)))
	})
	session.AddHandler(d.messageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	d.session = session
	d.enabled = true
	return d, nil
}

// Run connects the bot and blocks until ctx is cancelled.
func (d *DiscordService) Run(ctx context.Context) error {
	if !d.enabled {
		return nil
	}
	if err := d.session.Open(); err != nil {
		return fmt.Errorf("error opening discord connection: %w", err)
	}
	d.logger.Info("discord bot started", zap.String("prefix", d.commandPrefix))
	<-ctx.Done()
	return d.session.Close()
}

func (d *DiscordService) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, d.commandPrefix) {
		return
	}
	_ = s.ChannelTyping(m.ChannelID)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	reply := d.Handle(ctx, m.Content[len(d.commandPrefix):])
	d.sendMessage(ctx, s, m.ChannelID, reply)

	d.logger.Info("discord command",
		zap.String("user", m.Author.Username),
		zap.String("channel", m.ChannelID),
		zap.String("command", m.Content))
}

// Handle answers one command (the text after the prefix).
func (d *DiscordService) Handle(ctx context.Context, command string) string {
	cmd := parseCommand(command)
	switch cmd.name {
	case "":
		return fmt.Sprintf("Usage: `%spages`, `%ssearch <terms>` or `%s<page> <question>`",
			d.commandPrefix, d.commandPrefix, d.commandPrefix)
	case "pages":
		var b strings.Builder
		for _, p := range content.Pages() {
			fmt.Fprintf(&b, "• `%s` %s\n", p.Slug, p.Title)
		}
		return strings.TrimSuffix(b.String(), "\n")
	case "search":
		return d.handleSearch(ctx, cmd.rest)
	default:
		return d.handleAsk(ctx, cmd.name, cmd.rest)
	}
}

func (d *DiscordService) handleSearch(ctx context.Context, terms string) string {
	resp, err := d.search.Query(ctx, terms, 0)
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case err != nil:
		d.logger.Error("discord search failed", zap.Error(err))
		return "Search is unavailable right now."
	case resp.Count == 0:
		return "No pages matched."
	}
	var b strings.Builder
	for i, r := range resp.Results {
		fmt.Fprintf(&b, "%d. %s (`%s`)\n", i+1, r.Title, r.Slug)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *DiscordService) handleAsk(ctx context.Context, slug, question string) string {
	page, ok := content.Lookup(slug)
	if !ok {
		return fmt.Sprintf("Unknown page `%s`. Try `%spages`.", slug, d.commandPrefix)
	}
	action, ok := textAction(page)
	if !ok {
		return fmt.Sprintf("`%s` has no question box.", slug)
	}

	res, err := d.site.Run(ctx, page.Slug, action.ID, models.ActionRequest{Input: question}, nil)
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case err != nil:
		d.logger.Error("discord ask failed", zap.Error(err))
		return "Something went wrong."
	case res.State.Error != nil:
		return *res.State.Error
	case res.State.Result != nil:
		return *res.State.Result
	}
	return ""
}

// textAction returns the first free-text action of a page.
func textAction(p content.Page) (content.Action, bool) {
	for _, a := range p.Actions {
		if a.Input == content.InputText {
			return a, true
		}
	}
	return content.Action{}, false
}

type command struct {
	name string
	rest string
}

func parseCommand(s string) command {
	s = strings.TrimSpace(s)
	name, rest, _ := strings.Cut(s, " ")
	return command{name: strings.ToLower(name), rest: strings.TrimSpace(rest)}
}

// messageSender is the part of *discordgo.Session replies go through.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// sendMessage sends a message to Discord, handling length limits. The pause
// between chunks ends early when ctx is done.
func (d *DiscordService) sendMessage(ctx context.Context, s messageSender, channelID, message string) {
	if len(message) <= discordLimit {
		if _, err := s.ChannelMessageSend(channelID, message); err != nil {
			d.logger.Error("error sending discord message", zap.Error(err))
		}
		return
	}

	chunks := splitMessage(message, 1900)
	for i, chunk := range chunks {
		if i > 0 {
			chunk = "...continued:\n" + chunk
		}
		if i < len(chunks)-1 {
			chunk += "\n..."
		}
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			d.logger.Error("error sending discord message chunk", zap.Int("chunk", i), zap.Error(err))
		}
		if i == len(chunks)-1 {
			break
		}
		select {
		case <-ctx.Done():
			d.logger.Warn("discord reply cut short", zap.Int("sent", i+1), zap.Int("chunks", len(chunks)))
			return
		case <-time.After(chunkPause):
		}
	}
}

// splitMessage splits a message into chunks respecting word boundaries
func splitMessage(message string, maxLength int) []string {
	if len(message) <= maxLength {
		return []string{message}
	}

	var chunks []string
	for len(message) > maxLength {
		splitIndex := maxLength
		if spaceIndex := strings.LastIndex(message[:maxLength], " "); spaceIndex > maxLength/2 {
			splitIndex = spaceIndex
		}
		for splitIndex > 0 && !utf8.RuneStart(message[splitIndex]) {
			splitIndex--
		}
		chunks = append(chunks, message[:splitIndex])
		message = strings.TrimPrefix(message[splitIndex:], " ")
	}
	if len(message) > 0 {
		chunks = append(chunks, message)
	}
	return chunks
}

// IsEnabled returns whether the Discord service is enabled
func (d *DiscordService) IsEnabled() bool {
	return d.enabled
}

// GetStatus returns the current status of the Discord service
func (d *DiscordService) GetStatus() map[string]interface{} {
	status := map[string]interface{}{
		"enabled":        d.enabled,
		"command_prefix": d.commandPrefix,
		"uptime":         time.Since(d.startTime).String(),
	}
	switch {
	case d.enabled && d.session != nil && d.session.State != nil && d.session.State.User != nil:
		status["status"] = "connected"
		status["user"] = d.session.State.User.Username
		status["guilds"] = len(d.session.State.Guilds)
	case d.enabled:
		status["status"] = "initialized_not_started"
	default:
		status["status"] = "disabled"
	}
	return status
}
