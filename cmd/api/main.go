package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"merger_maestro/pkg/api/config"
	"merger_maestro/pkg/api/memo"
	"merger_maestro/pkg/api/middleware"
	"merger_maestro/pkg/api/simulation"
	"merger_maestro/pkg/core/agent"
	"merger_maestro/pkg/core/prompt"
	"merger_maestro/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(prompt.Get(), resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in memo prompt")
	}

	agentCfg := agent.Config{ActiveProvider: "gemini"}
	if data, err := os.ReadFile("config/models.yaml"); err != nil {
		fmt.Printf("[WARNING] No model config, using gemini: %v\n", err)
	} else if agentCfg, err = agent.ParseConfig(data); err != nil {
		fmt.Printf("[WARNING] Bad config/models.yaml, using gemini: %v\n", err)
		agentCfg = agent.Config{ActiveProvider: "gemini"}
	}
	agentMgr := agent.NewManager(agentCfg)

	memoCache := newMemoCache()
	defer store.Close()

	mux := http.NewServeMux()

	configHandler := config.NewHandler(agentMgr)
	mux.HandleFunc("/api/config", configHandler.HandleConfig)
	mux.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	mux.HandleFunc("/api/simulate", simulation.HandleSimulate)
	mux.HandleFunc("/api/simulate/defaults", simulation.HandleDefaults)

	memoHandler := memo.NewHandler(agentMgr, prompt.Get(), memoCache)
	mux.HandleFunc("/api/memo", memoHandler.HandleMemo)

	var origins []string
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	handler := middleware.Logging(logger)(middleware.CORS(origins)(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /api/simulate/defaults")
	fmt.Println("  - POST /api/simulate")
	fmt.Println("  - POST /api/memo")

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}

// newMemoCache prefers Postgres when DATABASE_URL is reachable and falls back
// to JSON files under MEMO_CACHE_DIR.
func newMemoCache() *store.MemoCache {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] Database unavailable, using file cache: %v\n", err)
		} else if pool := store.GetPool(); pool != nil {
			c := store.NewMemoCache(pool, "")
			if err := c.EnsureSchema(ctx); err != nil {
				fmt.Printf("[WARNING] %v, using file cache\n", err)
			} else {
				fmt.Println("[STORE] Memo cache backed by Postgres")
				return c
			}
		}
	}

	dir := os.Getenv("MEMO_CACHE_DIR")
	fmt.Printf("[STORE] Memo cache backed by files (%s)\n", dirOrDefault(dir))
	return store.NewMemoCache(nil, dir)
}

func dirOrDefault(dir string) string {
	if dir == "" {
		return filepath.Join(".cache", "memos")
	}
	return dir
}
