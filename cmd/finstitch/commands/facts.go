package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/facts"
)

// factsCmd represents the facts command
var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "스티칭 결과에 대한 팩트 조회",
	Long: `소스 재무제표를 스티칭한 뒤 개별 팩트 단위로 평탄화하여
필터/트렌드 조회 결과를 JSON으로 출력합니다.

Example:
  go run ./cmd/finstitch facts --input sources.json --type income_statement --concept Revenue
  go run ./cmd/finstitch facts --input sources.json --type income_statement --concept Revenue --trend`,
	RunE: runFacts,
}

var (
	factsInput      string
	factsType       string
	factsMaxPeriods int
	factsConcept    string
	factsLabel      string
	factsPattern    string
	factsMinPeriods int
	factsComplete   bool
	factsTrend      bool
)

func init() {
	rootCmd.AddCommand(factsCmd)

	factsCmd.Flags().StringVar(&factsInput, "input", "", "source statements JSON file (required)")
	factsCmd.Flags().StringVar(&factsType, "type", string(contracts.StatementIncome), "statement type")
	factsCmd.Flags().IntVar(&factsMaxPeriods, "max-periods", 0, "maximum output periods (0 = config default)")
	factsCmd.Flags().StringVar(&factsConcept, "concept", "", "filter by concept (substring)")
	factsCmd.Flags().StringVar(&factsLabel, "label", "", "filter by exact original label")
	factsCmd.Flags().StringVar(&factsPattern, "label-pattern", "", "filter original labels by regexp")
	factsCmd.Flags().IntVar(&factsMinPeriods, "min-periods", 0, "require concept coverage of at least N periods")
	factsCmd.Flags().BoolVar(&factsComplete, "complete", false, "require coverage of every selected period")
	factsCmd.Flags().BoolVar(&factsTrend, "trend", false, "emit period-indexed trend series (oldest first)")
	_ = factsCmd.MarkFlagRequired("input")
}

func runFacts(cmd *cobra.Command, args []string) error {
	cfg, _, stitcher, err := bootstrap()
	if err != nil {
		return err
	}

	sources, err := readSources(factsInput)
	if err != nil {
		return err
	}

	maxPeriods := factsMaxPeriods
	if maxPeriods <= 0 {
		maxPeriods = cfg.Stitch.MaxPeriods
	}

	stitched, err := stitcher.Stitch(sources, contracts.StatementType(factsType), maxPeriods, contracts.PolicyStandardize)
	if err != nil {
		return fmt.Errorf("stitch: %w", err)
	}

	query := facts.NewView(stitched).Query()
	if factsConcept != "" {
		query = query.ByConcept(factsConcept)
	}
	if factsLabel != "" {
		query = query.ByOriginalLabel(factsLabel)
	}
	if factsPattern != "" {
		query = query.ByOriginalLabelPattern(factsPattern)
	}
	if factsMinPeriods > 0 {
		query = query.AcrossPeriods(factsMinPeriods)
	}
	if factsComplete {
		query = query.CompletePeriodsOnly()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if factsTrend {
		series, err := query.Trend()
		if err != nil {
			return fmt.Errorf("trend query: %w", err)
		}
		return enc.Encode(series)
	}

	matched, err := query.Execute()
	if err != nil {
		return fmt.Errorf("fact query: %w", err)
	}
	return enc.Encode(matched)
}
