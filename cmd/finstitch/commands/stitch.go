package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/render"
)

// stitchCmd represents the stitch command
var stitchCmd = &cobra.Command{
	Use:   "stitch",
	Short: "소스 재무제표를 하나의 다기간 재무제표로 병합",
	Long: `파싱된 소스 재무제표(JSON)를 읽어 기간 선택, 개념 표준화,
값 통합, 정렬을 수행한 뒤 결과를 출력합니다.

Example:
  go run ./cmd/finstitch stitch --input sources.json --type income_statement
  go run ./cmd/finstitch stitch --input sources.json --type balance_sheet --max-periods 4 --json`,
	RunE: runStitch,
}

var (
	stitchInput      string
	stitchType       string
	stitchMaxPeriods int
	stitchRaw        bool
	stitchJSON       bool
)

func init() {
	rootCmd.AddCommand(stitchCmd)

	stitchCmd.Flags().StringVar(&stitchInput, "input", "", "source statements JSON file (required)")
	stitchCmd.Flags().StringVar(&stitchType, "type", string(contracts.StatementIncome), "statement type")
	stitchCmd.Flags().IntVar(&stitchMaxPeriods, "max-periods", 0, "maximum output periods (0 = config default)")
	stitchCmd.Flags().BoolVar(&stitchRaw, "raw", false, "keep raw concepts instead of standardizing")
	stitchCmd.Flags().BoolVar(&stitchJSON, "json", false, "emit the stitched statement as JSON")
	_ = stitchCmd.MarkFlagRequired("input")
}

func runStitch(cmd *cobra.Command, args []string) error {
	cfg, _, stitcher, err := bootstrap()
	if err != nil {
		return err
	}

	sources, err := readSources(stitchInput)
	if err != nil {
		return err
	}

	maxPeriods := stitchMaxPeriods
	if maxPeriods <= 0 {
		maxPeriods = cfg.Stitch.MaxPeriods
	}

	policy := contracts.PolicyStandardize
	if stitchRaw {
		policy = contracts.PolicyRawConcepts
	}

	stitched, err := stitcher.Stitch(sources, contracts.StatementType(stitchType), maxPeriods, policy)
	if err != nil {
		return fmt.Errorf("stitch: %w", err)
	}

	if stitchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stitched)
	}

	printTable(render.ToTable(stitched))
	return nil
}

// readSources loads and decodes the source statements file
func readSources(path string) ([]contracts.SourceStatement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var sources []contracts.SourceStatement
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return sources, nil
}

// printTable writes the stitched table to stdout
func printTable(table *render.Table) {
	if len(table.Rows) == 0 {
		fmt.Println("(empty statement)")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Line Item")
	for _, col := range table.Columns {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s", row.Label)
		for _, cell := range row.Cells {
			if cell == nil {
				fmt.Fprintf(w, "\t-")
			} else {
				fmt.Fprintf(w, "\t%.2f", *cell)
			}
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}
