package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dmmstp/builder"
	"github.com/katalvlaran/dmmstp/core"
	"github.com/katalvlaran/dmmstp/graphio"
	"github.com/katalvlaran/dmmstp/internal/logger"
	"github.com/katalvlaran/dmmstp/mstp"
)

const (
	formatTextValue = "text"
	formatJsonValue = "json"

	sourceFile   = "Graph file (YAML/JSON)"
	sourceSample = "Random connected sample"
	sourceManual = "Manual edge entry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the DM-MSTP procedure and print the resulting tree",
	Run: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLogLevel(cfg.Log.Level, cfg.Log.Format); err != nil {
			log.Fatal().Err(err).Msg("")
		}
		if cfg.Run.Format != formatTextValue && cfg.Run.Format != formatJsonValue {
			log.Fatal().Msgf("--format must be %s or %s, got %q",
				formatTextValue, formatJsonValue, cfg.Run.Format)
		}

		g, err := resolveGraph()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to prepare input graph")
		}
		log.Info().
			Int("vertices", g.VertexCount()).
			Int("edges", g.EdgeCount()).
			Bool("faithful", cfg.Run.Faithful).
			Msg("starting DM-MSTP run")

		opts := []mstp.Option{mstp.WithContext(cmd.Context())}
		if cfg.Run.Faithful {
			opts = append(opts, mstp.WithFaithfulMasking())
		}

		start := time.Now()
		edges, total, err := mstp.Compute(g, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("DM-MSTP run failed")
		}
		log.Info().
			Dur("duration", time.Since(start)).
			Int("tree_edges", len(edges)).
			Float64("total_weight", total).
			Msg("DM-MSTP run complete")

		if cfg.Run.Format == formatJsonValue {
			err = printJson(edges, total)
		} else {
			err = printTable(edges, total)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("failed to print result")
		}
	},
}

func init() {
	runCmd.Flags().String("file", "", "graph file or directory (YAML/JSON)")
	runCmd.Flags().Bool("sample", false, "run on a seeded random connected sample")
	runCmd.Flags().Int("nodes", 10, "vertex count for --sample")
	runCmd.Flags().Int("edges", 15, "edge count for --sample")
	runCmd.Flags().Int64("seed", 42, "random seed for --sample")
	runCmd.Flags().Bool("manual", false, "enter edges interactively, one 'from to weight' per line")
	runCmd.Flags().Bool("faithful", false,
		"reproduce the legacy masking behavior, sentinel re-selection included")
	runCmd.Flags().String("format", formatTextValue, "output format [text|json]")

	for flagName, key := range map[string]string{
		"file":     "run.file",
		"sample":   "run.sample",
		"nodes":    "run.nodes",
		"edges":    "run.edges",
		"seed":     "run.seed",
		"manual":   "run.manual",
		"faithful": "run.faithful",
		"format":   "run.format",
	} {
		if err := viper.BindPFlag(key, runCmd.Flags().Lookup(flagName)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}

// resolveGraph picks the input source: explicit flags first, interactive
// prompts when none were given.
func resolveGraph() (*core.Graph[string], error) {
	switch {
	case cfg.Run.File != "":
		return loadGraphFile(cfg.Run.File)
	case cfg.Run.Sample:
		return buildSample(cfg.Run.Nodes, cfg.Run.Edges, cfg.Run.Seed)
	case cfg.Run.Manual:
		return promptManualEdges()
	default:
		return promptSource()
	}
}

func loadGraphFile(path string) (*core.Graph[string], error) {
	doc, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.HasTravelTimes() {
		log.Debug().Msg("document carries travel_time_edges; DM-MSTP uses distances only")
	}

	return doc.DistanceGraph()
}

func buildSample(nodes, edges int, seed int64) (*core.Graph[string], error) {
	log.Info().
		Int("nodes", nodes).
		Int("edges", edges).
		Int64("seed", seed).
		Msg("generating random connected sample")

	return builder.RandomConnected(
		builder.WithVertexCount(nodes),
		builder.WithEdgeCount(edges),
		builder.WithSeed(seed),
	)
}

// promptSource asks which input to use when no source flag was given.
func promptSource() (*core.Graph[string], error) {
	var choice string
	prompt := &survey.Select{
		Message: "Choose a graph source:",
		Options: []string{sourceFile, sourceSample, sourceManual},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return nil, errors.Wrap(err, "source selection canceled")
	}

	switch choice {
	case sourceFile:
		var path string
		in := &survey.Input{Message: "Path to graph file or directory:"}
		if err := survey.AskOne(in, &path, survey.WithValidator(survey.Required)); err != nil {
			return nil, errors.Wrap(err, "path entry canceled")
		}

		return loadGraphFile(path)
	case sourceSample:
		nodes, err := promptInt("Vertex count:", cfg.Run.Nodes)
		if err != nil {
			return nil, err
		}
		edges, err := promptInt("Edge count:", cfg.Run.Edges)
		if err != nil {
			return nil, err
		}
		seed, err := promptInt("Seed:", int(cfg.Run.Seed))
		if err != nil {
			return nil, err
		}

		return buildSample(nodes, edges, int64(seed))
	default:
		return promptManualEdges()
	}
}

func promptInt(message string, def int) (int, error) {
	answer := strconv.Itoa(def)
	in := &survey.Input{Message: message, Default: answer}
	if err := survey.AskOne(in, &answer); err != nil {
		return 0, errors.Wrap(err, "entry canceled")
	}
	v, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, errors.Wrapf(err, "%q is not an integer", answer)
	}

	return v, nil
}

// promptManualEdges collects 'from to weight' lines and builds the graph.
func promptManualEdges() (*core.Graph[string], error) {
	var raw string
	in := &survey.Multiline{
		Message: "Edges, one 'from to weight' per line:",
		Help:    "Example:\n  A B 1.5\n  B C 2",
	}
	if err := survey.AskOne(in, &raw, survey.WithValidator(survey.Required)); err != nil {
		return nil, errors.Wrap(err, "edge entry canceled")
	}

	return parseManualEdges(raw)
}

// parseManualEdges turns whitespace-separated edge lines into a graph.
// Blank lines are skipped; anything else must be exactly three fields.
func parseManualEdges(raw string) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	entered := 0
	for lineNo, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, errors.Errorf(
				"line %d: want 'from to weight', got %q", lineNo+1, line)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad weight %q", lineNo+1, fields[2])
		}
		if err = g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
		entered++
	}
	if entered == 0 {
		return nil, errors.New("no edges entered")
	}

	return g, nil
}

func tablewriterFor(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "FROM", "TO", "WEIGHT"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	return table
}

func printTable(edges []mstp.Edge[string], total float64) error {
	table := tablewriterFor(os.Stdout)
	for i, e := range edges {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.From,
			e.To,
			formatWeight(e.Weight),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", formatWeight(total)})
	table.Render()

	return nil
}

// jsonWeight marshals non-finite weights as strings; faithful runs may emit
// +Inf edges, which encoding/json refuses as bare numbers.
type jsonWeight float64

func (w jsonWeight) MarshalJSON() ([]byte, error) {
	v := float64(w)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(formatWeight(v))
	}

	return json.Marshal(v)
}

type jsonEdge struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Weight jsonWeight `json:"weight"`
}

type jsonResult struct {
	Edges []jsonEdge `json:"edges"`
	Total jsonWeight `json:"total_weight"`
}

func printJson(edges []mstp.Edge[string], total float64) error {
	out := jsonResult{Edges: make([]jsonEdge, 0, len(edges)), Total: jsonWeight(total)}
	for _, e := range edges {
		out.Edges = append(out.Edges, jsonEdge{From: e.From, To: e.To, Weight: jsonWeight(e.Weight)})
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}
	_, err = fmt.Fprintln(os.Stdout, string(raw))

	return err
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
