package config

import "github.com/namsral/flag"

type Config struct {
	WeightsFile   string
	Style         string
	HistoryFile   string
	Debug         bool
	SelfplayGames int
	SelfplayOut   string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("klondike", flag.ContinueOnError)
	fs.StringVar(&c.WeightsFile, "weights-file", "", "optional JSON heuristic weights loaded at startup")
	fs.StringVar(&c.Style, "style", "neutral", "initial play style: aggressive, conservative or neutral")
	fs.StringVar(&c.HistoryFile, "history-file", "/tmp/klondike_readline.tmp", "readline history file")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	fs.IntVar(&c.SelfplayGames, "selfplay-games", 1000, "number of games for the selfplay data generator")
	fs.StringVar(&c.SelfplayOut, "selfplay-out", "training_data.jsonl", "output file for the selfplay data generator")
	err := fs.Parse(args)
	return err
}
