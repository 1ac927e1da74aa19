package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rbhz/vocab-cards/app/cards"
	"github.com/rbhz/vocab-cards/app/clients/pons"
	"github.com/rbhz/vocab-cards/app/db"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

type Opts struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	JSONLog bool `long:"json-log" description:"Write logs as JSON"`

	Generate GenerateCommand `command:"generate" description:"Generate flashcards enriched with dictionary lookups"`
	Inspect  InspectCommand  `command:"inspect" description:"Print parsed vocabulary as term to answer mapping"`
}

// GenerateCommand builds the flashcards file
type GenerateCommand struct {
	Input      string `long:"input" env:"INPUT_FILE" default:"german_vocab.txt" description:"Vocabulary file"`
	Output     string `long:"output" env:"OUTPUT_FILE" default:"anki_cards.tsv" description:"Flashcards TSV file"`
	PonsToken  string `long:"pons-token" env:"PONS_API_KEY" description:"PONS API secret"`
	Dictionary string `long:"dictionary" env:"PONS_DICTIONARY" default:"deen" description:"PONS dictionary code"`
	SourceLang string `long:"source-lang" env:"PONS_SOURCE_LANG" default:"de" description:"Language of vocabulary terms"`
	Endpoint   string `long:"endpoint" env:"PONS_ENDPOINT" default:"https://api.pons.com/v1/dictionary" description:"PONS dictionary API URL"`
	BoltDB     string `long:"boltdb" env:"BOLTDB" description:"Path to BoltDB export ledger"`
	RedisURL   string `long:"redis" env:"REDIS_URL" description:"Redis export ledger URL"`
	OnlyNew    bool   `long:"only-new" description:"Skip words already recorded in the export ledger"`
}

// Execute runs the flashcards pipeline
func (c *GenerateCommand) Execute(_ []string) error {
	ledger, closeLedger, err := getStorage(c.BoltDB, c.RedisURL)
	if err != nil {
		return err
	}
	defer closeLedger()

	in, err := os.Open(c.Input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer in.Close()

	client := pons.NewClient(context.Background(), c.PonsToken, c.Dictionary, c.SourceLang).WithEndpoint(c.Endpoint)
	generator := cards.NewGenerator(client, ledger, c.OnlyNew)
	rows, err := generator.Generate(in)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := cards.WriteTSV(out, rows); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}
	if err := generator.Record(rows); err != nil {
		return err
	}
	log.Info().Str("output", c.Output).Int("cards", len(rows)).Msg("cards saved")
	return nil
}

// InspectCommand prints parsed vocabulary
type InspectCommand struct {
	Input string `long:"input" env:"INPUT_FILE" default:"german_vocab.txt" description:"Vocabulary file"`
}

// Execute prints term to answer mapping as JSON
func (c *InspectCommand) Execute(_ []string) error {
	return c.print(os.Stdout)
}

func (c *InspectCommand) print(w io.Writer) error {
	in, err := os.Open(c.Input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer in.Close()
	quiz, err := cards.Inspect(in)
	if err != nil {
		return err
	}
	jdata, jerr := json.MarshalIndent(quiz, "", "  ")
	if jerr != nil {
		return errors.Wrap(jerr, "marshal vocabulary")
	}
	if _, err := fmt.Fprintln(w, string(jdata)); err != nil {
		return errors.Wrap(err, "print vocabulary")
	}
	return nil
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		setupLogging(opts.Verbose, opts.JSONLog)
		return command.Execute(args)
	}
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return
		}
		log.Fatal().Err(err).Msg("failed to run")
	}
}

func setupLogging(verbose bool, jsonLog bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if !jsonLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// getStorage opens the export ledger. Without bolt path or redis url there is no ledger.
func getStorage(boltPath string, redisURL string) (db.Storage, func(), error) {
	if redisURL != "" {
		redisStorage, err := db.NewRedisStorage(redisURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "create redis client")
		}
		return redisStorage, func() {}, nil
	}
	if boltPath == "" {
		return nil, func() {}, nil
	}
	boltDB, err := bolt.Open(boltPath, 0600, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open boltDB database")
	}
	boltStorage, err := db.NewBoltStorage(boltDB)
	if err != nil {
		boltDB.Close()
		return nil, nil, errors.Wrap(err, "create bolt storage")
	}
	return boltStorage, func() {
		if err := boltDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close boltDB database")
		}
	}, nil
}
