// tgfileid - Telegram file ID codec and index.
// Copyright (C) 2024 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "maunium.net/go/mauflag"

	"go.mau.fi/tgfileid/pkg/config"
	"go.mau.fi/tgfileid/pkg/humanise"
)

// Information to find out exactly which commit the binary was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var configPath = flag.MakeFull("c", "config", "Path to the config file.", "config.yaml").String()
var outputFormat = flag.MakeFull("f", "format", "Output format: pretty or json.", formatPretty).String()
var inputPath = flag.MakeFull("i", "input", "Read batch input from a file instead of stdin.", "").String()
var useIndex = flag.MakeFull("x", "index", "Record decoded file IDs in the database in batch mode.", "false").Bool()
var wantVersion = flag.MakeFull("v", "version", "View version and exit.", "false").Bool()
var wantHelp, _ = flag.MakeHelpFlag()

const usage = `tgfileid [-hv] [-c <path>] [-f pretty|json] <command> [args...]

Commands:
  decode <file_id>...         Decode file IDs.
  unique <file_id>...         Print the unique ID of file IDs.
  parse-unique <unique_id>... Decode unique IDs.
  convert <file_id>...        Re-encode file IDs with the configured version.
  swap-sticker <file_id>...   Turn stickers into documents and back.
  encode                      Encode a JSON file ID read from stdin.
  batch [-i <path>] [-x]      Decode file IDs from stdin, one per line.
  lookup <unique_id>...       Print the file ID stored for unique IDs.
  owner <owner_id>            List stored file IDs uploaded by an account.`

func main() {
	flag.SetHelpTitles("tgfileid - Decode and encode Telegram file IDs.", usage)
	err := flag.Parse()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	} else if *wantVersion {
		fmt.Printf("tgfileid %s (commit %s, built at %s)\n", Tag, Commit, BuildTime)
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = log.Logger.Level(cfg.Level())

	args := flag.Args()
	if len(args) == 0 {
		flag.PrintHelp()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	a := &app{
		cfg:       cfg,
		log:       log.Logger,
		out:       os.Stdout,
		in:        os.Stdin,
		format:    *outputFormat,
		inputPath: *inputPath,
		useIndex:  *useIndex,
		color:     isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err = a.run(ctx, args[0], args[1:]); err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg(humanise.Error(err))
		cancel()
		os.Exit(1)
	}
}
