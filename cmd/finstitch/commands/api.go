package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/finstitch/internal/api"
	"github.com/wonny/finstitch/internal/api/handlers"
	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/store"
	"github.com/wonny/finstitch/pkg/database"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health                      - Health check
  POST /api/statements/stitch       - 스티칭 실행
  POST /api/statements/table        - 행/열 테이블 프로젝션
  POST /api/statements/facts        - 팩트 필터/트렌드 조회
  GET  /api/results/{fingerprint}   - 저장된 결과 조회

Example:
  go run ./cmd/finstitch api
  go run ./cmd/finstitch api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, stitcher, err := bootstrap()
	if err != nil {
		return err
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// Result store is optional: wired only when a database is configured
	var repo contracts.StitchedRepository
	if cfg.HasDatabase() {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		repo = store.NewStitchedRepository(db.Pool)
		log.Info("Stitched result store enabled")
	} else {
		log.Warn("DATABASE_URL not set, running without result store")
	}

	handler := handlers.NewStatementHandler(stitcher, repo, log)
	router := api.NewRouter(handler, cfg, log)
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
