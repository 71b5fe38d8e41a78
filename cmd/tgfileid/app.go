package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"go.mau.fi/tgfileid/pkg/batch"
	"go.mau.fi/tgfileid/pkg/config"
	"go.mau.fi/tgfileid/pkg/fileid"
	"go.mau.fi/tgfileid/pkg/fileidjson"
	"go.mau.fi/tgfileid/pkg/humanise"
	"go.mau.fi/tgfileid/pkg/store"
)

type app struct {
	cfg *config.Config
	log zerolog.Logger
	out io.Writer
	in  io.Reader

	format    string
	inputPath string
	useIndex  bool
	color     bool
}

var errUnknownCommand = errors.New("unknown command")

func (a *app) run(ctx context.Context, command string, args []string) error {
	if a.format != formatPretty && a.format != formatJSON {
		return errors.Errorf("unknown output format %q", a.format)
	}
	switch command {
	case "decode":
		return a.eachArg(args, a.decode)
	case "unique":
		return a.eachArg(args, a.unique)
	case "parse-unique":
		return a.eachArg(args, a.parseUnique)
	case "convert":
		return a.eachArg(args, a.convert)
	case "swap-sticker":
		return a.eachArg(args, a.swapSticker)
	case "encode":
		return a.encode()
	case "batch":
		return a.batch(ctx)
	case "lookup":
		return a.withStore(ctx, func(c *store.Container) error {
			return a.eachArg(args, func(arg string) error { return a.lookup(ctx, c, arg) })
		})
	case "owner":
		if len(args) != 1 {
			return errors.New("owner takes exactly one owner ID")
		}
		return a.withStore(ctx, func(c *store.Container) error { return a.owner(ctx, c, args[0]) })
	default:
		return errors.Wrapf(errUnknownCommand, "%q", command)
	}
}

// eachArg calls fn for every argument and keeps going after failures.
func (a *app) eachArg(args []string, fn func(arg string) error) error {
	if len(args) == 0 {
		return errors.New("no identifiers given")
	}
	var errs error
	for _, arg := range args {
		if err := fn(arg); err != nil {
			a.log.Warn().Err(err).Str("input", arg).Msg(humanise.Error(err))
			multierr.AppendInto(&errs, errors.Wrapf(err, "%s", arg))
		}
	}
	return errs
}

func (a *app) decoder() fileid.Decoder {
	return fileid.Decoder{
		OnWarning: fileid.ZerologWarnings(a.log),
		LegacyFix: a.cfg.LegacyFix,
	}
}

func (a *app) decode(arg string) error {
	id, err := a.decoder().FileID(arg)
	if err != nil {
		return err
	}
	return a.printDecoded(arg, id)
}

func (a *app) unique(arg string) error {
	id, err := a.decoder().FileID(arg)
	if err != nil {
		return err
	}
	unique, err := fileid.Project(id)
	if err != nil {
		return err
	}
	return a.printUnique(arg, unique)
}

func (a *app) parseUnique(arg string) error {
	unique, err := a.decoder().UniqueID(arg)
	if err != nil {
		return err
	}
	return a.printUnique(arg, unique)
}

func (a *app) convert(arg string) error {
	id, err := a.decoder().FileID(arg)
	if err != nil {
		return err
	}
	encoded, err := fileid.EncodeFileIDVersion(id, a.cfg.Version())
	if err != nil {
		return err
	}
	return a.printText(arg, encoded)
}

func (a *app) swapSticker(arg string) error {
	id, err := a.decoder().FileID(arg)
	if err != nil {
		return err
	}
	doc, ok := id.(fileid.DocumentFileID)
	if !ok {
		return errors.Wrapf(fileid.ErrUnknownBaseType, "%s is not a document", id.FileType())
	}
	swapped, err := doc.SwapStickerType()
	if err != nil {
		return err
	}
	encoded, err := fileid.EncodeFileID(swapped)
	if err != nil {
		return err
	}
	return a.printText(arg, encoded)
}

func (a *app) encode() error {
	data, err := io.ReadAll(a.in)
	if err != nil {
		return errors.Wrap(err, "read stdin")
	}
	id, err := fileidjson.UnmarshalFileID(data)
	if err != nil {
		return errors.Wrap(err, "parse JSON")
	}
	encoded, err := fileid.EncodeFileID(id)
	if err != nil {
		return err
	}
	return a.printText("", encoded)
}

func (a *app) readLines() (lines []string, err error) {
	in := a.in
	if a.inputPath != "" {
		var f *os.File
		f, err = os.Open(a.inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		in = f
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return lines, nil
}

func (a *app) batch(ctx context.Context) error {
	lines, err := a.readLines()
	if err != nil {
		return err
	}
	processor, err := batch.New(a.cfg.BatchOptions(a.log))
	if err != nil {
		return err
	}
	results, processErr := processor.Process(ctx, lines)
	for _, res := range results {
		if res.Input == "" || res.Err != nil {
			continue
		}
		if err = a.printDecoded(res.Input, res.FileID); err != nil {
			return err
		}
	}
	a.log.Info().
		Int("inputs", len(lines)).
		Int("failed", len(multierr.Errors(processErr))).
		Msg("Batch finished")
	if !a.useIndex {
		return processErr
	}
	if processor.Mode() == batch.AllOrNothing && processErr != nil {
		return processErr
	}
	return multierr.Append(processErr, a.withStore(ctx, func(c *store.Container) error {
		return index(ctx, c, results)
	}))
}

func index(ctx context.Context, c *store.Container, results []batch.Result) error {
	log := zerolog.Ctx(ctx)
	var stored int
	for _, res := range results {
		if res.Err != nil || res.FileID == nil || res.Unique == nil {
			continue
		}
		entry, err := c.FileID.NewEntry(res.Input, res.FileID)
		if err != nil {
			return err
		}
		if err = entry.Upsert(ctx); err != nil {
			return errors.Wrapf(err, "store %s", res.Input)
		}
		stored++
	}
	log.Info().Int("stored", stored).Msg("Updated index")
	return nil
}

func (a *app) withStore(ctx context.Context, fn func(c *store.Container) error) (err error) {
	if a.cfg.Database == "" {
		return errors.New("no database configured")
	}
	c, err := store.Open(ctx, a.cfg.Database, a.log)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(c))
	return fn(c)
}

func (a *app) lookup(ctx context.Context, c *store.Container, uniqueID string) error {
	entry, err := c.FileID.GetByUniqueID(ctx, uniqueID)
	if err != nil {
		return err
	} else if entry == nil {
		return errors.Errorf("no file ID stored for %s", uniqueID)
	}
	return a.printEntry(entry)
}

func (a *app) owner(ctx context.Context, c *store.Container, arg string) error {
	ownerID, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return errors.Wrap(err, "parse owner ID")
	}
	entries, err := c.FileID.ListByOwner(ctx, uint32(ownerID))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err = a.printEntry(entry); err != nil {
			return err
		}
	}
	return nil
}
