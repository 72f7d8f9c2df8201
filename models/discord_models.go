package models

// DiscordConfig represents Discord service configuration. Enabled false
// keeps the bot off even when a token is set.
type DiscordConfig struct {
	Token         string `json:"-" yaml:"token"`
	CommandPrefix string `json:"command_prefix" yaml:"command_prefix"`
	Enabled       bool   `json:"enabled" yaml:"enabled"`
}
