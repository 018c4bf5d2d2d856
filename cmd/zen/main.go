package main

import (
	// ====================== ZEN IMPORTS ============================
	"github.com/inoxlang/zen/internal/config"
	"github.com/inoxlang/zen/internal/utils"
	"github.com/inoxlang/zen/internal/zen"

	// ====================== STDLIB ============================
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	// ====================== THIRD PARTY ============================
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "zen"

	RUN_SUBCMD   = "run"
	RANGE_SUBCMD = "range"
	HELP_SUBCMD  = "help"

	SOURCE_LOG_FIELD_NAME = "src"
)

var (
	SUBCOMMANDS = []string{RUN_SUBCMD, RANGE_SUBCMD, HELP_SUBCMD}

	ErrMissingRangeEnd = errors.New("missing end of range")
)

const ZEN_CMD_HELP = `Usage:
	zen run [-input <file>] [-format json|yaml] [-output json|yaml] [-pretty] [-natural] [-sep <separator>] <op>...
		reads an array (stdin by default), applies the operations in order and prints the result.
	zen range [-output json|yaml] [-pretty] [<start>] <end>
		prints the integers in [start, end), start defaults to 0. Bounds can be negative: zen range -3 2.
	zen help

Operations:
	push:<v> unshift:<v> pop shift clear tail reverse sort uniq
	slice:<begin>[:<end>] splice:<start>:<count>[:<v>...] insert:<index>:<v>
	delete:<index> set:<index>:<v> fill:<v>[:<start>[:<end>]] concat:<v>
	filter-eq:<v> reject-eq:<v> join[:<separator>] (join must be the last operation)

Values are parsed in the input format, values that cannot be parsed are strings.
The last argument of an operation can contain colons: set:0:"a:b".
`

func main() {
	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		fmt.Fprint(errW, ZEN_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	cfg, cfgPath, err := config.Load()
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	if cfgPath != "" {
		logger, err := newLogger(errW, cfg, "config")
		if err == nil {
			logger.Debug().Str("path", cfgPath).Msg("configuration file loaded")
		}
	}

	return runSubcommand(args[1], args[2:], inR, outW, errW, cfg)
}

func runSubcommand(subcmd string, args []string, inR io.Reader, outW io.Writer, errW io.Writer, cfg config.Config) int {
	if !slices.Contains(SUBCOMMANDS, subcmd) {
		fmt.Fprintf(errW, "unknown command '%s'\n%s", subcmd, ZEN_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	if subcmd == HELP_SUBCMD {
		fmt.Fprint(outW, ZEN_CMD_HELP)
		return 0
	}

	logger, err := newLogger(errW, cfg, subcmd)
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	switch subcmd {
	case RUN_SUBCMD:
		err = runOperations(args, inR, outW, errW, cfg, logger)
	case RANGE_SUBCMD:
		err = printRange(args, outW, errW, cfg, logger)
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			printError(errW, err)
		}
		return ERROR_STATUS_CODE
	}
	return 0
}

func runOperations(args []string, inR io.Reader, outW io.Writer, errW io.Writer, cfg config.Config, logger zerolog.Logger) error {
	flags := flag.NewFlagSet(RUN_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)

	inputPath := flags.String("input", "", "file to read the array from, stdin by default")
	inputFormat := flags.String("format", config.JSON_FORMAT, "format of the input")
	outputFormat := flags.String("output", cfg.OutputFormat, "format of the output")
	naturalSort := flags.Bool("natural", cfg.NaturalSort, "order digit sequences by numeric value when sorting strings")
	separator := flags.String("sep", cfg.Separator, "default separator of the join operation")
	pretty := flags.Bool("pretty", false, "indent JSON output")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := utils.CombineErrors(config.CheckFormat(*inputFormat), config.CheckFormat(*outputFormat)); err != nil {
		return err
	}

	var input []byte
	var err error
	if *inputPath == "" {
		input, err = io.ReadAll(inR)
	} else {
		input, err = os.ReadFile(*inputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read the input: %w", err)
	}

	array, err := decodeArray(input, *inputFormat)
	if err != nil {
		return fmt.Errorf("failed to decode the input array: %w", err)
	}

	pipeline, err := parsePipeline(flags.Args(), pipelineConfig{
		format:      *inputFormat,
		naturalSort: *naturalSort,
		separator:   *separator,
	})
	if err != nil {
		return err
	}

	logger.Debug().
		Int("size", array.Size()).
		Int("op-count", len(pipeline.ops)).
		Str("format", *inputFormat).
		Msg("applying operations")

	result, err := pipeline.apply(array)
	if err != nil {
		return err
	}

	logger.Debug().Int("size", result.Size()).Msg("operations applied")

	if pipeline.join != nil {
		_, err = fmt.Fprintln(outW, result.Join(*pipeline.join))
		return err
	}
	return writeArray(outW, result, *outputFormat, *pretty)
}

func printRange(args []string, outW io.Writer, errW io.Writer, cfg config.Config, logger zerolog.Logger) error {
	flags := flag.NewFlagSet(RANGE_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)
	outputFormat := flags.String("output", cfg.OutputFormat, "format of the output")
	pretty := flags.Bool("pretty", false, "indent JSON output")

	//integers are bounds, negative ones would otherwise be parsed as flags.
	var (
		bounds    []int
		flagsArgs []string
	)
	for _, arg := range args {
		if bound, err := strconv.Atoi(arg); err == nil {
			bounds = append(bounds, bound)
		} else {
			flagsArgs = append(flagsArgs, arg)
		}
	}

	if err := flags.Parse(flagsArgs); err != nil {
		return err
	}

	if err := config.CheckFormat(*outputFormat); err != nil {
		return err
	}

	if flags.NArg() > 0 {
		arg := flags.Arg(0)
		_, err := strconv.Atoi(arg)
		return fmt.Errorf("invalid range bound %q: %w", arg, err)
	}

	var r *zen.Array[int]
	switch len(bounds) {
	case 0:
		return ErrMissingRangeEnd
	case 1:
		r = zen.FromRange(bounds[0])
	case 2:
		r = zen.FromRange(bounds[0], bounds[1])
	default:
		return fmt.Errorf("a range has at most 2 bounds, got %d", len(bounds))
	}

	logger.Debug().Ints("bounds", bounds).Int("size", r.Size()).Msg("range created")
	return writeArray(outW, r, *outputFormat, *pretty)
}

func newLogger(w io.Writer, cfg config.Config, src string) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str(SOURCE_LOG_FIELD_NAME, src).Logger(), nil
}

func decodeArray(data []byte, format string) (*zen.Array[any], error) {
	array := new(zen.Array[any])

	var err error
	switch format {
	case config.YAML_FORMAT:
		err = yaml.Unmarshal(data, array)
	default:
		err = json.Unmarshal(data, array)
	}
	if err != nil {
		return nil, err
	}
	return array, nil
}

func writeArray[T any](w io.Writer, array *zen.Array[T], format string, pretty bool) error {
	var (
		output []byte
		err    error
	)

	switch format {
	case config.YAML_FORMAT:
		output, err = yaml.Marshal(array)
	default:
		if pretty {
			output, err = utils.MarshalIndentJSONNoHTMLEscape(array, "", "  ")
		} else {
			output, err = utils.MarshalJSONNoHTMLEscape(array)
		}
		output = append(output, '\n')
	}
	if err != nil {
		return err
	}

	_, err = w.Write(output)
	return err
}

func printError(errW io.Writer, err error) {
	out := config.NewOutput(errW)
	prefix := out.String("error:").Foreground(out.Color("1")).Bold()
	fmt.Fprintf(errW, "%s %s\n", prefix, err)
}
