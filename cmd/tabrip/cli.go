package main

// CLI defines the command-line flags for Kong.
type CLI struct {
	Config  string `short:"c" default:"config.ini" help:"Path to the settings file"`
	Format  string `short:"f" help:"Output format override: pdf or docx"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}
