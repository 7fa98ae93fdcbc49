package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"econ_explorer/pkg/api/advisor"
	apichart "econ_explorer/pkg/api/chart"
	"econ_explorer/pkg/api/config"
	"econ_explorer/pkg/api/economics"
	apiexplain "econ_explorer/pkg/api/explain"
	apiscenario "econ_explorer/pkg/api/scenario"
	"econ_explorer/pkg/core/agent"
	"econ_explorer/pkg/core/catalog"
	"econ_explorer/pkg/core/prompt"
	"econ_explorer/pkg/core/scenario"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize prompt library (relative to working dir, then executable)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	}

	// Initialize provider manager from config
	var agentCfg agent.Config
	if configData, err := os.ReadFile("config/models.yaml"); err == nil {
		yaml.Unmarshal(configData, &agentCfg)
	}
	agentMgr := agent.NewManager(agentCfg)

	// Load the capital catalog; built-ins are the fallback.
	if cat, err := catalog.LoadFile("config/catalog.hjson"); err == nil {
		catalog.SetActive(cat)
		fmt.Printf("[CATALOG] Loaded %d configurations from config/catalog.hjson\n", len(cat.Names()))
	} else {
		fmt.Printf("[CATALOG] Using built-in configurations (%v)\n", err)
	}

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Economics endpoints
	http.HandleFunc("/api/economics/catalog", economics.HandleCatalog)
	http.HandleFunc("/api/economics/derive", economics.HandleDerive)

	// Chart endpoints
	http.HandleFunc("/api/chart/render", apichart.HandleRender)
	http.HandleFunc("/api/chart/tooltip", apichart.HandleTooltip)

	// Scenario endpoints
	apiscenario.InitHandler(scenario.NewStore())
	http.HandleFunc("/api/scenarios", apiscenario.HandleList)
	http.HandleFunc("/api/scenarios/save", apiscenario.HandleSave)
	http.HandleFunc("/api/scenarios/clear", apiscenario.HandleClear)

	// LLM endpoints
	apiexplain.InitHandler(agentMgr)
	http.HandleFunc("/api/explain", apiexplain.HandleExplain)
	http.HandleFunc("/api/explain/status", apiexplain.HandleStatus)
	advisor.InitHandler(agentMgr)
	http.HandleFunc("/api/advisor/labour", advisor.HandleAdvise)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /api/economics/catalog")
	fmt.Println("  - POST /api/economics/derive")
	fmt.Println("  - POST /api/chart/render")
	fmt.Println("  - POST /api/chart/tooltip")
	fmt.Println("  - GET  /api/scenarios")
	fmt.Println("  - POST /api/scenarios/save")
	fmt.Println("  - POST /api/scenarios/clear")
	fmt.Println("  - POST /api/explain")
	fmt.Println("  - GET  /api/explain/status")
	fmt.Println("  - POST /api/advisor/labour")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
